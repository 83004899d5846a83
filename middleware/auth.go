package middleware

import (
	"errors"

	"github.com/Ind527/sultan1/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

// SessionUserKey is the session entry holding the authenticated user id.
const SessionUserKey = "user_id"

type AuthMiddleware struct {
	DB       *gorm.DB
	Sessions *session.Store
}

func NewAuthMiddleware(db *gorm.DB, sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{DB: db, Sessions: sessions}
}

// RequireAuth admits any request carrying a valid session. The user row
// is re-fetched on every request, so role changes and deactivation take
// effect on the user's next request without re-login.
func (m *AuthMiddleware) RequireAuth(c *fiber.Ctx) error {
	user, err := m.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not verify session"})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAdmin admits only sessions whose user currently has the admin role.
func (m *AuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	user, err := m.currentUser(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not verify session"})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
	}
	if !user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
	}

	c.Locals("user", user)
	return c.Next()
}

// currentUser resolves the session to a live user row. A missing or
// expired session, an unknown user id, or a deactivated account all
// count as unauthenticated, not as errors.
func (m *AuthMiddleware) currentUser(c *fiber.Ctx) (*models.User, error) {
	sess, err := m.Sessions.Get(c)
	if err != nil {
		return nil, err
	}

	userID, ok := sess.Get(SessionUserKey).(uint)
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := m.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, nil
	}

	return &user, nil
}
