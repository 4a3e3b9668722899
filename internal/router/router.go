package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"kotconnect/internal/auth"
	"kotconnect/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	dormHandler *handler.DormHandler,
	taskHandler *handler.TaskHandler,
	eventHandler *handler.EventHandler,
	expenseHandler *handler.ExpenseHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/signup", authHandler.Signup)
	api.POST("/users/login", authHandler.Login)

	// Secured routes (require JWT authentication). Token validation is
	// delegated to the token service; handlers read *auth.Claims from the
	// context.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	}))

	// User routes
	secured.GET("/users", userHandler.ListUsers)
	secured.GET("/users/ping", userHandler.Ping)

	// Dorm routes
	secured.GET("/dorms", dormHandler.GetDorm)
	secured.POST("/dorms", dormHandler.CreateDorm)
	secured.PUT("/dorms", dormHandler.JoinDorm)

	// Task routes
	secured.GET("/tasks", taskHandler.GetTasks)
	secured.GET("/tasks/all", taskHandler.GetAllTasks)
	secured.GET("/tasks/type", taskHandler.GetTasksByType)
	secured.POST("/tasks/:dormCode", taskHandler.CreateTask)
	secured.DELETE("/tasks/:id", taskHandler.DeleteTask)

	// Event routes
	secured.GET("/events", eventHandler.GetEvents)
	secured.GET("/events/all", eventHandler.GetAllEvents)
	secured.GET("/events/:id", eventHandler.GetEvent)
	secured.POST("/events/:dormCode", eventHandler.CreateEvent)
	secured.DELETE("/events/:id", eventHandler.DeleteEvent)

	// Expense routes
	secured.GET("/expenses", expenseHandler.GetExpenses)
	secured.POST("/expenses/:dormCode", expenseHandler.CreateExpense)
	secured.PUT("/expenses/:id/shares/:userId/paid", expenseHandler.MarkSharePaid)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
