package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "sekolahku_backend/internals/helpers"
)

// localsClaimKey is where the JWT middleware parks the verified claim.
const localsClaimKey = "auth_claim"

// Claim is the verified identity attached to an authenticated request.
// SchoolID is nil for superadmins, who are not bound to any school.
type Claim struct {
	UserID   uuid.UUID
	Email    string
	Role     string
	SchoolID *uuid.UUID
}

// StoreClaim attaches the claim to the request context.
func StoreClaim(c *fiber.Ctx, claim *Claim) {
	c.Locals(localsClaimKey, claim)
}

// ClaimFrom fetches the claim the middleware stored. A missing claim means
// the route was registered outside the auth group, which is a wiring bug,
// so it surfaces as an authentication failure rather than a panic.
func ClaimFrom(c *fiber.Ctx) (*Claim, *helper.ApiError) {
	claim, ok := c.Locals(localsClaimKey).(*Claim)
	if !ok || claim == nil {
		return nil, helper.NewAuthenticationError("")
	}
	return claim, nil
}
