package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"muhibacademy/config"
	"muhibacademy/i18n"
	"muhibacademy/middleware"
	"muhibacademy/notify"
	"muhibacademy/storage"
)

type SiteController struct {
	Store    *storage.Store
	Cfg      *config.Config
	Notifier *notify.Notifier
	Log      *log.Logger
}

func NewSiteController(store *storage.Store, cfg *config.Config, notifier *notify.Notifier, logger *log.Logger) *SiteController {
	return &SiteController{Store: store, Cfg: cfg, Notifier: notifier, Log: logger}
}

func lang(c *fiber.Ctx) string {
	if l, ok := c.Locals("lang").(string); ok {
		return l
	}
	return middleware.DefaultLang
}

func (sc *SiteController) Home(c *fiber.Ctx) error {
	courses, err := sc.Store.ListActiveCourses("")
	if err != nil {
		sc.Log.Printf("home: listing courses failed: %v", err)
		courses = nil
	}

	return c.Render("index", fiber.Map{
		"Lang":    lang(c),
		"Title":   "Muhib Academy",
		"Courses": courses,
	})
}

func (sc *SiteController) Courses(c *fiber.Ctx) error {
	t := i18n.T(lang(c))
	kategoriya := c.Query("kategoriya")

	courses, err := sc.Store.ListActiveCourses(kategoriya)
	if err != nil {
		sc.Log.Printf("courses: listing failed: %v", err)
		courses = nil
	}
	categories, err := sc.Store.ListCategories()
	if err != nil {
		sc.Log.Printf("courses: categories failed: %v", err)
	}

	return c.Render("courses", fiber.Map{
		"Lang":       lang(c),
		"Title":      t("courses.title"),
		"Courses":    courses,
		"Categories": categories,
		"Selected":   kategoriya,
	})
}

func (sc *SiteController) CourseDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Redirect("/online-courses")
	}

	course, err := sc.Store.GetCourse(uint(id))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			sc.Log.Printf("course detail: %v", err)
		}
		return c.Redirect("/online-courses?msg=not_found")
	}

	return c.Render("course_detail", fiber.Map{
		"Lang":   lang(c),
		"Title":  course.Title(lang(c)),
		"Course": course,
	})
}

func (sc *SiteController) EnrollPage(c *fiber.Ctx) error {
	t := i18n.T(lang(c))
	courses, err := sc.Store.ListActiveCourses("")
	if err != nil {
		sc.Log.Printf("enroll page: listing failed: %v", err)
	}

	return c.Render("enroll", fiber.Map{
		"Lang":     lang(c),
		"Title":    t("enroll.title"),
		"Courses":  courses,
		"Selected": c.Query("course_id"),
	})
}

func (sc *SiteController) EnrollSubmit(c *fiber.Ctx) error {
	t := i18n.T(lang(c))

	name := c.FormValue("name")
	phone := c.FormValue("phone")
	courseID := c.FormValue("course_id")

	if name == "" || phone == "" || courseID == "" {
		return sc.renderEnrollError(c, t("form.required"))
	}

	id, err := strconv.Atoi(courseID)
	if err != nil {
		return sc.renderEnrollError(c, t("course.not_found"))
	}

	course, err := sc.Store.GetCourse(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sc.renderEnrollError(c, t("course.not_found"))
		}
		sc.Log.Printf("enroll: course lookup failed: %v", err)
		return sc.renderEnrollError(c, t("error.generic"))
	}

	// Best effort: the visitor's enrollment succeeds whether or not the
	// notification goes out.
	sc.Notifier.SendEnrollment(name, phone, course.TitleUz, course.Category.Name)

	return c.Render("success", fiber.Map{
		"Lang":    lang(c),
		"Title":   t("enroll.title"),
		"Message": t("enroll.success"),
	})
}

func (sc *SiteController) renderEnrollError(c *fiber.Ctx, message string) error {
	t := i18n.T(lang(c))
	courses, _ := sc.Store.ListActiveCourses("")
	return c.Render("enroll", fiber.Map{
		"Lang":    lang(c),
		"Title":   t("enroll.title"),
		"Courses": courses,
		"Error":   message,
	})
}

func (sc *SiteController) ContactSubmit(c *fiber.Ctx) error {
	t := i18n.T(lang(c))

	name := c.FormValue("name")
	phone := c.FormValue("phone")
	message := c.FormValue("message")

	if name == "" || phone == "" {
		courses, _ := sc.Store.ListActiveCourses("")
		return c.Render("index", fiber.Map{
			"Lang":    lang(c),
			"Title":   "Muhib Academy",
			"Courses": courses,
			"Error":   t("form.required"),
		})
	}

	sc.Notifier.SendContact(name, phone, message)

	return c.Render("success", fiber.Map{
		"Lang":    lang(c),
		"Title":   "Muhib Academy",
		"Message": t("contact.success"),
	})
}

func (sc *SiteController) SetLanguage(c *fiber.Ctx) error {
	if l := c.Params("lang"); middleware.SupportedLang(l) {
		c.Cookie(&fiber.Cookie{
			Name:  middleware.LangCookie,
			Value: l,
			Path:  "/",
		})
	}

	ref := c.Get("Referer")
	if ref == "" {
		ref = "/"
	}
	return c.Redirect(ref)
}
