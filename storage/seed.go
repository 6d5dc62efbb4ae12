package storage

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"muhibacademy/models"
)

// Seed inserts the fixed starter rows. Each block only fires when its table
// is found empty, so repeated boots leave existing data alone.
func (s *Store) Seed() error {
	if err := s.seedCategories(); err != nil {
		return err
	}
	if err := s.seedAdmin(); err != nil {
		return err
	}
	return s.seedCourses()
}

func (s *Store) seedCategories() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range []string{"Online", "Offline", "Hybrid", "Intensiv"} {
		if err := s.db.Create(&models.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	s.log.Println("Seeded default categories: Online, Offline, Hybrid, Intensiv")
	return nil
}

func (s *Store) seedAdmin() error {
	var count int64
	if err := s.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.db.Create(&models.Admin{Username: "admin", PasswordHash: string(hash)}).Error; err != nil {
		return err
	}
	s.log.Println("Seeded default admin account (change the password!)")
	return nil
}

func (s *Store) seedCourses() error {
	var count int64
	if err := s.db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var online models.Category
	if err := s.db.Where("name = ?", "Online").First(&online).Error; err != nil {
		return err
	}

	courses := []models.Course{
		{
			TitleUz:       "Qur'on o'qish",
			TitleRu:       "Чтение Корана",
			TitleEn:       "Quran Reading",
			DescriptionUz: "Tajvid qoidalari asosida Qur'oni Karimni to'g'ri o'qishni o'rganasiz. Harflarning maxrajlari va sifatlari bilan tanishasiz.",
			DescriptionRu: "Вы научитесь правильно читать Священный Коран по правилам таджвида, изучите махраджи и сифаты букв.",
			DescriptionEn: "Learn to recite the Holy Quran correctly according to the rules of tajweed, including articulation points of the letters.",
			DurationUz:    "6 oy",
			DurationRu:    "6 месяцев",
			DurationEn:    "6 months",
			PriceUz:       "300 000 so'm/oy",
			PriceRu:       "300 000 сум/месяц",
			PriceEn:       "300,000 UZS/month",
			StartDateUz:   "Har oyning 1-sanasi",
			StartDateRu:   "1-го числа каждого месяца",
			StartDateEn:   "1st of every month",
			FeaturesUz:    "Tajvid qoidalari\nAmaliy mashg'ulotlar\nKichik guruhlar",
			FeaturesRu:    "Правила таджвида\nПрактические занятия\nМалые группы",
			FeaturesEn:    "Tajweed rules\nPractical sessions\nSmall groups",
			Color:         "green",
			CategoryID:    online.ID,
			Active:        true,
		},
		{
			TitleUz:       "Arab tili",
			TitleRu:       "Арабский язык",
			TitleEn:       "Arabic Language",
			DescriptionUz: "Arab tilini noldan boshlab o'rganasiz: alifbo, grammatika va jonli muloqot. Darslar tajribali ustozlar bilan olib boriladi.",
			DescriptionRu: "Изучение арабского языка с нуля: алфавит, грамматика и живое общение с опытными преподавателями.",
			DescriptionEn: "Learn Arabic from scratch: the alphabet, grammar and live conversation with experienced teachers.",
			DurationUz:    "9 oy",
			DurationRu:    "9 месяцев",
			DurationEn:    "9 months",
			PriceUz:       "350 000 so'm/oy",
			PriceRu:       "350 000 сум/месяц",
			PriceEn:       "350,000 UZS/month",
			StartDateUz:   "Har oyning 15-sanasi",
			StartDateRu:   "15-го числа каждого месяца",
			StartDateEn:   "15th of every month",
			FeaturesUz:    "Noldan boshlab\nGrammatika va muloqot\nDarslik materiallari bepul",
			FeaturesRu:    "С нуля\nГрамматика и разговорная практика\nУчебные материалы бесплатно",
			FeaturesEn:    "From scratch\nGrammar and conversation\nFree study materials",
			Color:         "blue",
			CategoryID:    online.ID,
			Active:        true,
		},
		{
			TitleUz:       "Islom asoslari",
			TitleRu:       "Основы Ислама",
			TitleEn:       "Foundations of Islam",
			DescriptionUz: "Aqida, fiqh va siyrat bo'yicha boshlang'ich bilimlar. Har bir musulmon bilishi kerak bo'lgan asosiy masalalar.",
			DescriptionRu: "Начальные знания по акыде, фикху и сире. Основные вопросы, которые должен знать каждый мусульманин.",
			DescriptionEn: "Introductory knowledge of aqidah, fiqh and seerah: the essentials every Muslim should know.",
			DurationUz:    "4 oy",
			DurationRu:    "4 месяца",
			DurationEn:    "4 months",
			PriceUz:       "250 000 so'm/oy",
			PriceRu:       "250 000 сум/месяц",
			PriceEn:       "250,000 UZS/month",
			StartDateUz:   "Har oyning 1-sanasi",
			StartDateRu:   "1-го числа каждого месяца",
			StartDateEn:   "1st of every month",
			FeaturesUz:    "Aqida darslari\nFiqh asoslari\nSiyrat suhbatlari",
			FeaturesRu:    "Уроки акыды\nОсновы фикха\nБеседы о сире",
			FeaturesEn:    "Aqidah lessons\nFiqh basics\nSeerah talks",
			Color:         "amber",
			CategoryID:    online.ID,
			Active:        true,
		},
	}

	for i := range courses {
		if err := s.db.Omit(clause.Associations).Create(&courses[i]).Error; err != nil {
			return err
		}
	}
	s.log.Println("Seeded example courses")
	return nil
}
