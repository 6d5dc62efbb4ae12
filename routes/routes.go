package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"muhibacademy/config"
	"muhibacademy/controllers"
	"muhibacademy/middleware"
	"muhibacademy/notify"
	"muhibacademy/storage"
)

func SetupRoutes(app *fiber.App, store *storage.Store, cfg *config.Config, notifier *notify.Notifier, logger *log.Logger) {
	app.Use(middleware.Locale())

	// Public site
	siteController := controllers.NewSiteController(store, cfg, notifier, logger)
	app.Get("/", siteController.Home)
	app.Get("/online-courses", siteController.Courses)
	app.Get("/course/:id", siteController.CourseDetail)
	app.Get("/enroll", siteController.EnrollPage)
	app.Post("/enroll", siteController.EnrollSubmit)
	app.Post("/contact-form", siteController.ContactSubmit)
	app.Get("/set_language/:lang", siteController.SetLanguage)

	// JSON API kept for the old site's clients
	apiController := controllers.NewAPIController(store, cfg, notifier, logger)
	app.Get("/api/courses", apiController.GetCourses)
	app.Get("/api/kategoriyalar", apiController.GetCategories)
	app.Post("/api/register", apiController.Register)

	// Admin: login endpoints are open, everything else sits behind the guard
	adminController := controllers.NewAdminController(store, cfg, logger)
	app.Get("/admin", adminController.LoginPage)
	app.Post("/admin/login", adminController.Login)

	admin := app.Group("/admin", middleware.AdminRequired(cfg))
	admin.Get("/logout", adminController.Logout)
	admin.Get("/dashboard", adminController.Dashboard)
	admin.Get("/course/add", adminController.AddCoursePage)
	admin.Post("/course/add", adminController.AddCourse)
	admin.Get("/course/edit/:id", adminController.EditCoursePage)
	admin.Post("/course/edit/:id", adminController.EditCourse)
	admin.Get("/course/delete/:id", adminController.DeleteCourseGet)
	admin.Post("/course/delete/:id", adminController.DeleteCourse)
}
