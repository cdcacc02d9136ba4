package usecase

import "context"

// Pinger is any dependency that can report liveness.
type Pinger func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks map[string]Pinger
}

// NewHealthUsecase takes named checks; a nil Pinger is reported as disabled.
func NewHealthUsecase(checks map[string]Pinger) HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok"}
	healthy := true
	for name, ping := range u.checks {
		switch {
		case ping == nil:
			status[name] = "disabled"
		case ping(ctx) != nil:
			status[name] = "unavailable"
			healthy = false
		default:
			status[name] = "ok"
		}
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
