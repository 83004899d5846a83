package main

import (
	"github.com/Ind527/sultan1/handlers"
	"github.com/Ind527/sultan1/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// SetupRoutes wires every handler behind its guard. Listing and detail
// routes are public; triage requires a session; mutation requires admin.
func SetupRoutes(app *fiber.App, db *gorm.DB, sessions *session.Store) {
	auth := handlers.NewAuthHandler(db, sessions)
	products := handlers.NewProductHandler(db)
	categories := handlers.NewCategoryHandler(db)
	quotes := handlers.NewQuoteHandler(db)
	contact := handlers.NewContactHandler(db)
	search := handlers.NewSearchHandler(db)

	guard := middleware.NewAuthMiddleware(db, sessions)

	api := app.Group("/api")

	// Auth
	api.Post("/register", auth.Register)
	api.Post("/login", auth.Login)
	api.Post("/logout", guard.RequireAuth, auth.Logout)
	api.Get("/user", guard.RequireAuth, auth.CurrentUser)

	// Categories
	api.Get("/categories", categories.GetCategories)
	api.Post("/categories", guard.RequireAdmin, categories.CreateCategory)
	api.Put("/categories/:id", guard.RequireAdmin, categories.UpdateCategory)
	api.Delete("/categories/:id", guard.RequireAdmin, categories.DeleteCategory)

	// Products
	api.Get("/products", products.GetProducts)
	api.Get("/products/slug/:slug", products.GetProductBySlug)
	api.Get("/products/:id", products.GetProduct)
	api.Post("/products", guard.RequireAdmin, products.CreateProduct)
	api.Put("/products/:id", guard.RequireAdmin, products.UpdateProduct)
	api.Delete("/products/:id", guard.RequireAdmin, products.DeleteProduct)

	// Quotes
	api.Get("/quotes", guard.RequireAuth, quotes.GetQuotes)
	api.Get("/quotes/:id", guard.RequireAuth, quotes.GetQuote)
	api.Post("/quotes", quotes.CreateQuote)
	api.Put("/quotes/:id", guard.RequireAuth, quotes.UpdateQuote)
	api.Delete("/quotes/:id", guard.RequireAdmin, quotes.DeleteQuote)

	// Contact messages
	api.Get("/contact-messages", guard.RequireAuth, contact.GetMessages)
	api.Post("/contact-messages", contact.CreateMessage)
	api.Put("/contact-messages/:id", guard.RequireAuth, contact.UpdateMessage)
	api.Delete("/contact-messages/:id", guard.RequireAdmin, contact.DeleteMessage)

	// Search
	api.Get("/search/suggestions", search.GetSuggestions)
}
