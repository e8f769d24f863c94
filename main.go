package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/gvasquezjhon/granhotel/routes"
	"github.com/gvasquezjhon/granhotel/storage"
	"github.com/gvasquezjhon/granhotel/utils"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the admin console
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		if err := ctx.ReadJSON(&tokenInput); err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	user := app.Party("/api/user")
	{
		user.Post("/login", routes.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Post("/register", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware, routes.Register)
		user.Get("/me", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetCurrentUser)
	}

	guests := app.Party("/api/guests", accessTokenVerifierMiddleware)
	{
		guests.Post("/", utils.ReceptionOnlyMiddleware, routes.CreateGuest)
		guests.Get("/", utils.ReceptionOnlyMiddleware, routes.GetGuests)
		guests.Get("/{id}", utils.ReceptionOnlyMiddleware, routes.GetGuest)
		guests.Put("/{id}", utils.ManagerOnlyMiddleware, routes.UpdateGuest)
		guests.Patch("/{id}/blacklist", utils.ManagerOnlyMiddleware, routes.ToggleGuestBlacklist)
	}

	rooms := app.Party("/api/rooms", accessTokenVerifierMiddleware)
	{
		rooms.Post("/", utils.ManagerOnlyMiddleware, routes.CreateRoom)
		rooms.Get("/", utils.ReceptionOnlyMiddleware, routes.GetRooms)
		rooms.Get("/{id:uint}", utils.ReceptionOnlyMiddleware, routes.GetRoom)
		rooms.Put("/{id:uint}", utils.ManagerOnlyMiddleware, routes.UpdateRoom)
		rooms.Delete("/{id:uint}", utils.AdminOnlyMiddleware, routes.DeleteRoom)
	}

	reservations := app.Party("/api/reservations", accessTokenVerifierMiddleware)
	{
		reservations.Post("/", utils.ReceptionOnlyMiddleware, routes.CreateReservation)
		reservations.Get("/", utils.ReceptionOnlyMiddleware, routes.GetReservations)
		reservations.Get("/export", utils.ManagerOnlyMiddleware, routes.ExportReservations)
		reservations.Get("/{id:uint}", utils.ReceptionOnlyMiddleware, routes.GetReservation)
		reservations.Put("/{id:uint}", utils.ManagerOnlyMiddleware, routes.UpdateReservation)
		reservations.Patch("/{id:uint}/status", utils.ManagerOnlyMiddleware, routes.UpdateReservationStatus)
		reservations.Post("/{id:uint}/cancel", utils.ManagerOnlyMiddleware, routes.CancelReservation)
		reservations.Post("/{id:uint}/checkout", utils.ReceptionOnlyMiddleware, routes.CheckoutReservation)
	}

	staff := app.Party("/api/staff", accessTokenVerifierMiddleware)
	{
		staff.Get("/", utils.AdminOnlyMiddleware, routes.GetStaff)
		staff.Get("/{id:uint}", utils.AdminOnlyMiddleware, routes.GetStaffMember)
		staff.Patch("/{id:uint}/active", utils.AdminOnlyMiddleware, routes.ToggleStaffActive)
	}

	stats := app.Party("/api/stats", accessTokenVerifierMiddleware)
	{
		stats.Get("/", utils.ManagerOnlyMiddleware, routes.GetStats)
		stats.Get("/activity", utils.ManagerOnlyMiddleware, routes.GetActivity)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := ":" + port

	log.Println("Starting server on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
