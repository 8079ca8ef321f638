package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/configs"
	assessmentRoute "konselingku_backend/internals/features/counseling/assessments/route"
	behaviorRoute "konselingku_backend/internals/features/counseling/behavior/route"
	careerRoute "konselingku_backend/internals/features/counseling/career/route"
	sessionRoute "konselingku_backend/internals/features/counseling/sessions/route"
	counselorRoute "konselingku_backend/internals/features/school/counselors/route"
	studentRoute "konselingku_backend/internals/features/school/students/route"
	authRoute "konselingku_backend/internals/features/users/auth/route"
	authService "konselingku_backend/internals/features/users/auth/service"
	authMw "konselingku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route aplikasi.
// Endpoint auth (register/login/refresh) publik; sisanya di belakang JWT.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authService.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		}),
	)

	studentRoute.StudentRoutes(api, db)
	counselorRoute.CounselorRoutes(api, db)
	sessionRoute.SessionRoutes(api, db)
	assessmentRoute.AssessmentRoutes(api, db)
	behaviorRoute.BehaviorRoutes(api, db)
	careerRoute.CareerRoutes(api, db)
}
