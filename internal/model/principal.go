package model

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleEstimator UserRole = "ESTIMATOR"
	UserRoleViewer    UserRole = "VIEWER"
)

type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsEstimator() bool {
	return p.Role == UserRoleEstimator
}

func (p Principal) IsViewer() bool {
	return p.Role == UserRoleViewer
}

// CanEstimate reports whether the principal may create or recalculate estimates.
func (p Principal) CanEstimate() bool {
	return p.IsAdmin() || p.IsEstimator()
}

// CanView reports whether the principal may read saved estimates.
func (p Principal) CanView() bool {
	return p.CanEstimate() || p.IsViewer()
}
