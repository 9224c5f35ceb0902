// Package webapi provides the HTTP API of the ledger.
// It is organized into sub-packages per resource:
// - customer: customer registration and lookup
// - account: account opening and balance
// - transaction: transfers and transaction history
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	"github.com/amirasaad/ledger/webapi/common"
	customerweb "github.com/amirasaad/ledger/webapi/customer"
	transactionweb "github.com/amirasaad/ledger/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	rl := a.Config.RateLimit
	if rl == nil {
		rl = &config.RateLimit{MaxRequests: 100}
	}
	fiberApp.Use(limiter.New(limiter.Config{
		Max:          rl.MaxRequests,
		Expiration:   rl.Window,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Ledger API is running! 🚀")
		},
	)

	customerweb.Routes(fiberApp, a.LedgerService)
	accountweb.Routes(fiberApp, a.LedgerService)
	transactionweb.Routes(fiberApp, a.LedgerService, a.Idempotency)
	return fiberApp
}

// clientKey identifies the caller for rate limiting. Behind a proxy the first
// X-Forwarded-For address wins, then X-Real-IP, then the peer address.
func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.Clone(strings.TrimSpace(first))
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return strings.Clone(realIP)
	}
	return strings.Clone(c.IP())
}
