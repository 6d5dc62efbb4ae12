package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"muhibacademy/config"
	"muhibacademy/notify"
	"muhibacademy/storage"
	"muhibacademy/utils"
)

// APIController serves the JSON endpoints kept for clients of the old site:
// field names stay in Uzbek as they always were.
type APIController struct {
	Store    *storage.Store
	Cfg      *config.Config
	Notifier *notify.Notifier
	Log      *log.Logger
}

func NewAPIController(store *storage.Store, cfg *config.Config, notifier *notify.Notifier, logger *log.Logger) *APIController {
	return &APIController{Store: store, Cfg: cfg, Notifier: notifier, Log: logger}
}

func (api *APIController) GetCourses(c *fiber.Ctx) error {
	courses, err := api.Store.ListActiveCourses(c.Query("kategoriya"))
	if err != nil {
		api.Log.Printf("api courses: %v", err)
		return utils.InternalServerError(c, "Xato yuz berdi")
	}

	result := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		result = append(result, fiber.Map{
			"id":          courses[i].ID,
			"nom":         courses[i].TitleUz,
			"tafsif":      courses[i].DescriptionUz,
			"davomiyligi": courses[i].DurationUz,
			"narx":        courses[i].PriceUz,
			"rasm_url":    courses[i].ImageURL,
			"kategoriya":  courses[i].Category.Name,
		})
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func (api *APIController) GetCategories(c *fiber.Ctx) error {
	categories, err := api.Store.ListCategories()
	if err != nil {
		api.Log.Printf("api categories: %v", err)
		return utils.InternalServerError(c, "Xato yuz berdi")
	}

	result := make([]fiber.Map, 0, len(categories))
	for i := range categories {
		result = append(result, fiber.Map{
			"id":  categories[i].ID,
			"nom": categories[i].Name,
		})
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func (api *APIController) Register(c *fiber.Ctx) error {
	var input struct {
		Ism     string `json:"ism"`
		Telefon string `json:"telefon"`
		KursID  uint   `json:"kurs_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	for field, value := range map[string]bool{
		"ism":     input.Ism != "",
		"telefon": input.Telefon != "",
		"kurs_id": input.KursID != 0,
	} {
		if !value {
			return utils.BadRequest(c, fmt.Sprintf("%s majburiy maydon", field))
		}
	}

	course, err := api.Store.GetCourse(input.KursID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Kurs topilmadi")
		}
		api.Log.Printf("api register: course lookup failed: %v", err)
		return utils.InternalServerError(c, "Xato yuz berdi")
	}

	// Notification failure never reaches the client.
	api.Notifier.SendEnrollment(input.Ism, input.Telefon, course.TitleUz, course.Category.Name)

	return utils.Message(c, fiber.StatusOK, "Muvaffaqiyatli ro'yxatdan o'tdingiz!")
}
