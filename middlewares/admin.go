package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/gofiber/fiber/v2"
)

func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Signature string `json:"signature"`
		}

		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": 0,
				"msg":    "INVALID_JSON",
			})
		}

		adminCode := os.Getenv("ADMIN_CODE")
		adminSecret := os.Getenv("ADMIN_SECRET")

		data := adminCode + adminSecret

		h := hmac.New(sha256.New, []byte(adminSecret))
		h.Write([]byte(data))
		expectedSignature := hex.EncodeToString(h.Sum(nil))

		if body.Signature != expectedSignature {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": 0,
				"msg":    "INVALID_SIGNATURE",
			})
		}

		return c.Next()
	}
}
