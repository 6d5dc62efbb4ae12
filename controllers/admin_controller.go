package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"muhibacademy/config"
	"muhibacademy/i18n"
	"muhibacademy/models"
	"muhibacademy/storage"
	"muhibacademy/utils"
)

type AdminController struct {
	Store *storage.Store
	Cfg   *config.Config
	Log   *log.Logger
}

func NewAdminController(store *storage.Store, cfg *config.Config, logger *log.Logger) *AdminController {
	return &AdminController{Store: store, Cfg: cfg, Log: logger}
}

func (ac *AdminController) LoginPage(c *fiber.Ctx) error {
	if token := c.Cookies(utils.AdminTokenCookie); token != "" {
		if _, err := utils.ParseAdminToken(token, ac.Cfg); err == nil {
			return c.Redirect("/admin/dashboard")
		}
	}

	t := i18n.T(lang(c))
	return c.Render("admin_login", fiber.Map{
		"Lang":  lang(c),
		"Title": t("admin.login_title"),
	})
}

func (ac *AdminController) Login(c *fiber.Ctx) error {
	t := i18n.T(lang(c))

	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		return ac.renderLoginError(c, t("form.required"))
	}

	admin, err := ac.Store.GetAdminByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password, so accounts cannot be probed.
			return ac.renderLoginError(c, t("admin.invalid_credentials"))
		}
		ac.Log.Printf("login: admin lookup failed: %v", err)
		return ac.renderLoginError(c, t("error.generic"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return ac.renderLoginError(c, t("admin.invalid_credentials"))
	}

	token, err := utils.GenerateAdminToken(admin.ID, admin.Username, ac.Cfg)
	if err != nil {
		ac.Log.Printf("login: token generation failed: %v", err)
		return ac.renderLoginError(c, t("error.generic"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.AdminTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(72 * time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/admin/dashboard")
}

func (ac *AdminController) renderLoginError(c *fiber.Ctx, message string) error {
	t := i18n.T(lang(c))
	return c.Render("admin_login", fiber.Map{
		"Lang":  lang(c),
		"Title": t("admin.login_title"),
		"Error": message,
	})
}

func (ac *AdminController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     utils.AdminTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/admin")
}

func (ac *AdminController) Dashboard(c *fiber.Ctx) error {
	t := i18n.T(lang(c))

	courses, err := ac.Store.ListActiveCourses("")
	if err != nil {
		ac.Log.Printf("dashboard: listing failed: %v", err)
		courses = nil
	}

	return c.Render("admin_dashboard", fiber.Map{
		"Lang":       lang(c),
		"Title":      t("admin.dashboard"),
		"Courses":    courses,
		"Total":      len(courses),
		"MaxCourses": config.MaxCourses,
		"Username":   c.Locals("admin_username"),
		"Msg":        c.Query("msg"),
	})
}

func (ac *AdminController) AddCoursePage(c *fiber.Ctx) error {
	count, err := ac.Store.CountActiveCourses()
	if err != nil {
		ac.Log.Printf("add course page: count failed: %v", err)
		return c.Redirect("/admin/dashboard?msg=error")
	}
	if count >= config.MaxCourses {
		return c.Redirect("/admin/dashboard?msg=max_courses")
	}

	return ac.renderCourseForm(c, "admin_add_course", nil, "")
}

func (ac *AdminController) AddCourse(c *fiber.Ctx) error {
	t := i18n.T(lang(c))

	// The ceiling is checked before any other validation.
	count, err := ac.Store.CountActiveCourses()
	if err != nil {
		ac.Log.Printf("add course: count failed: %v", err)
		return ac.renderCourseForm(c, "admin_add_course", nil, t("error.generic"))
	}
	if count >= config.MaxCourses {
		return c.Redirect("/admin/dashboard?msg=max_courses")
	}

	var course models.Course
	if msg := ac.applyCourseForm(c, &course); msg != "" {
		return ac.renderCourseForm(c, "admin_add_course", &course, msg)
	}

	if file, err := c.FormFile("rasm"); err == nil {
		url, err := utils.SaveCourseImage(c, file, ac.Cfg.UploadDir)
		if err != nil {
			ac.Log.Printf("add course: image save failed: %v", err)
			return ac.renderCourseForm(c, "admin_add_course", &course, t("error.generic"))
		}
		course.ImageURL = url
	}

	course.Active = true
	if err := ac.Store.CreateCourse(&course); err != nil {
		ac.Log.Printf("add course: insert failed: %v", err)
		return ac.renderCourseForm(c, "admin_add_course", &course, t("error.generic"))
	}

	return c.Redirect("/admin/dashboard?msg=course_added")
}

func (ac *AdminController) EditCoursePage(c *fiber.Ctx) error {
	course, err := ac.courseFromParams(c)
	if err != nil {
		return c.Redirect("/admin/dashboard?msg=not_found")
	}
	return ac.renderCourseForm(c, "admin_edit_course", course, "")
}

func (ac *AdminController) EditCourse(c *fiber.Ctx) error {
	t := i18n.T(lang(c))

	course, err := ac.courseFromParams(c)
	if err != nil {
		return c.Redirect("/admin/dashboard?msg=not_found")
	}

	if msg := ac.applyCourseForm(c, course); msg != "" {
		return ac.renderCourseForm(c, "admin_edit_course", course, msg)
	}

	// A new accepted image replaces the old file; otherwise the stored path
	// is preserved verbatim.
	if file, err := c.FormFile("rasm"); err == nil && file.Filename != "" && utils.AllowedImage(file.Filename) {
		utils.RemoveCourseImage(course.ImageURL, ac.Cfg.UploadDir)
		url, err := utils.SaveCourseImage(c, file, ac.Cfg.UploadDir)
		if err != nil {
			ac.Log.Printf("edit course: image save failed: %v", err)
			return ac.renderCourseForm(c, "admin_edit_course", course, t("error.generic"))
		}
		course.ImageURL = url
	}

	if err := ac.Store.UpdateCourse(course); err != nil {
		ac.Log.Printf("edit course: update failed: %v", err)
		return ac.renderCourseForm(c, "admin_edit_course", course, t("error.generic"))
	}

	return c.Redirect("/admin/dashboard?msg=course_updated")
}

// DeleteCourse soft-deletes after re-verifying the authenticated admin's own
// password. The row is untouched on a wrong or missing password.
func (ac *AdminController) DeleteCourse(c *fiber.Ctx) error {
	t := i18n.T(lang(c))

	password := c.FormValue("admin_password")
	if password == "" {
		var req struct {
			AdminPassword string `json:"admin_password"`
		}
		if err := c.BodyParser(&req); err == nil {
			password = req.AdminPassword
		}
	}
	if password == "" {
		return utils.BadRequest(c, t("admin.password_required"))
	}

	adminID, ok := c.Locals("admin_id").(uint)
	if !ok {
		return utils.Unauthorized(c, t("admin.wrong_password"))
	}

	admin, err := ac.Store.GetAdminByID(adminID)
	if err != nil {
		ac.Log.Printf("delete course: admin lookup failed: %v", err)
		return utils.Unauthorized(c, t("admin.wrong_password"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return utils.Unauthorized(c, t("admin.wrong_password"))
	}

	course, err := ac.courseFromParams(c)
	if err != nil {
		return utils.NotFound(c, t("course.not_found"))
	}

	utils.RemoveCourseImage(course.ImageURL, ac.Cfg.UploadDir)

	if err := ac.Store.SoftDeleteCourse(course.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, t("course.not_found"))
		}
		ac.Log.Printf("delete course: %v", err)
		return utils.InternalServerError(c, t("error.generic"))
	}

	return utils.Message(c, fiber.StatusOK, t("admin.course_deleted"))
}

// DeleteCourseGet exists for old dashboard links; deletion itself always goes
// through the password-checked POST.
func (ac *AdminController) DeleteCourseGet(c *fiber.Ctx) error {
	return c.Redirect("/admin/dashboard?msg=password_required")
}

func (ac *AdminController) courseFromParams(c *fiber.Ctx) (*models.Course, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return nil, err
	}
	return ac.Store.GetCourse(uint(id))
}

// applyCourseForm copies the submitted fields onto course and returns a
// user-facing message when validation fails. The copy happens before any
// check, so a failed form re-renders with the admin's input intact. Nothing
// is persisted here.
func (ac *AdminController) applyCourseForm(c *fiber.Ctx, course *models.Course) string {
	t := i18n.T(lang(c))

	course.TitleUz = c.FormValue("title_uz")
	course.TitleRu = c.FormValue("title_ru")
	course.TitleEn = c.FormValue("title_en")
	course.DescriptionUz = c.FormValue("description_uz")
	course.DescriptionRu = c.FormValue("description_ru")
	course.DescriptionEn = c.FormValue("description_en")
	course.DurationUz = c.FormValue("duration_uz")
	course.DurationRu = c.FormValue("duration_ru")
	course.DurationEn = c.FormValue("duration_en")
	course.PriceUz = c.FormValue("price_uz")
	course.PriceRu = c.FormValue("price_ru")
	course.PriceEn = c.FormValue("price_en")
	course.StartDateUz = c.FormValue("start_date_uz")
	course.StartDateRu = c.FormValue("start_date_ru")
	course.StartDateEn = c.FormValue("start_date_en")
	course.FeaturesUz = c.FormValue("features_uz")
	course.FeaturesRu = c.FormValue("features_ru")
	course.FeaturesEn = c.FormValue("features_en")
	course.Color = c.FormValue("color")

	kategoriyaID := c.FormValue("kategoriya_id")
	if course.TitleUz == "" || course.DescriptionUz == "" || course.DurationUz == "" ||
		course.PriceUz == "" || course.StartDateUz == "" || kategoriyaID == "" {
		return t("form.required")
	}

	catID, err := strconv.Atoi(kategoriyaID)
	if err != nil {
		return t("admin.invalid_category")
	}
	exists, err := ac.Store.CategoryExists(uint(catID))
	if err != nil {
		ac.Log.Printf("course form: category check failed: %v", err)
		return t("error.generic")
	}
	if !exists {
		return t("admin.invalid_category")
	}

	course.CategoryID = uint(catID)
	return ""
}

func (ac *AdminController) renderCourseForm(c *fiber.Ctx, view string, course *models.Course, errMsg string) error {
	t := i18n.T(lang(c))

	// Templates always get a course to read field values from.
	if course == nil {
		course = &models.Course{}
	}

	categories, err := ac.Store.ListCategories()
	if err != nil {
		ac.Log.Printf("course form: categories failed: %v", err)
	}

	title := t("admin.add_course")
	if view == "admin_edit_course" {
		title = t("admin.edit_course")
	}

	return c.Render(view, fiber.Map{
		"Lang":       lang(c),
		"Title":      title,
		"Course":     course,
		"Categories": categories,
		"Error":      errMsg,
	})
}
