package routes

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/handlers"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/idcard"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/middlewares"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/registration"
	"github.com/Shaman-786/Hostel-Management-System-Desktop-Application/store"
)

// Deps carries everything the HTTP layer needs; main builds these once
// and passes them in, there are no ambient globals.
type Deps struct {
	Residents store.ResidentStore
	Hostels   store.HostelStore
	Users     store.UserStore
	Workflow  *registration.Workflow
	Generator *idcard.Generator

	CardDir  string
	PhotoDir string

	JWTSecret string
	JWTTTL    time.Duration
}

// Register wires all HTTP routes.
func Register(e *echo.Echo, d Deps) {
	auth := handlers.NewAuthHandler(d.Users, d.JWTSecret, d.JWTTTL)
	res := handlers.NewResidentHandler(d.Residents, d.Workflow)
	card := handlers.NewCardHandler(d.Residents, d.Hostels, d.Generator, d.CardDir)
	photo := handlers.NewPhotoHandler(d.PhotoDir)
	hostel := handlers.NewHostelHandler(d.Hostels)

	e.GET("/health", handlers.Health)
	e.POST("/auth/staff/login", auth.StaffLogin)

	// Reads are open; lists expose the summary projection only.
	e.GET("/residents", res.List)
	e.GET("/residents/:reg_no", res.Get)
	e.GET("/residents/:reg_no/card", card.Download)
	e.GET("/hostel", hostel.GetHostel)

	// Mutations require a staff token.
	authMW := middlewares.RequireAuth(d.JWTSecret)
	staff := e.Group("", authMW, middlewares.RequireRole("admin", "warden"))
	staff.POST("/photos", photo.Upload)
	staff.POST("/residents", res.Register)
	staff.POST("/residents/:reg_no/card", card.Generate)
	staff.PUT("/hostel", hostel.SaveHostel)
}
