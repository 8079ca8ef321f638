package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"konselingku_backend/internals/configs"
	authCtrl "konselingku_backend/internals/features/users/auth/controller"
	authService "konselingku_backend/internals/features/users/auth/service"
	"konselingku_backend/internals/middlewares"
	authMw "konselingku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/refresh-token", ctrl.RefreshToken)

	protected := grp.Group("",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authService.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		}),
	)
	protected.Post("/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
}
