package routes

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"inkwell/dto"
	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
	"inkwell/services"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Users     services.UserStore
	Posts     services.PostStore
	Comments  services.CommentStore
	JWTSecret string
	TokenTTL  time.Duration
}

// NewApp assembles the Fiber app: middleware stack, swagger, routes.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "inkwell",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.JWTAuth(d.JWTSecret))

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	Register(app, d)
	return app
}

// Register mounts all HTTP routes in one place.
// Keep paths lowercase, grouped by resource, and easy to discover.
func Register(app *fiber.App, d Deps) {
	auth := &handlers.AuthHandler{
		Auth: &services.AuthService{Users: d.Users, Secret: d.JWTSecret, TokenTTL: d.TokenTTL},
	}
	post := &handlers.PostHandler{Posts: d.Posts, Users: d.Users, Comments: d.Comments}
	like := &handlers.LikeHandler{Posts: d.Posts}
	comment := &handlers.CommentHandler{Posts: d.Posts, Comments: d.Comments, Users: d.Users}

	api := app.Group("/api")

	// POST /api/register
	// Example:
	//   curl -X POST http://localhost:3000/api/register \
	//   -H "Content-Type: application/json" \
	//   -d '{"username":"alice","password":"pw1"}'
	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)

	posts := api.Group("/posts")
	posts.Get("/", post.List)
	posts.Post("/", middleware.RequireAuth(), post.Create)
	posts.Get("/:post_id", post.Get)
	posts.Put("/:post_id", middleware.RequireAuth(), post.Update)
	posts.Delete("/:post_id", middleware.RequireAuth(), post.Delete)

	// POST /api/posts/:post_id/like — toggle
	posts.Post("/:post_id/like", middleware.RequireAuth(), like.Toggle)
	posts.Post("/:post_id/comments", middleware.RequireAuth(), comment.Create)

	// Health check
	// GET /api/healthz → "ok"
	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(dto.ErrorResponse{Message: err.Error()})
}
