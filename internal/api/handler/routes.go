package handler

import (
	"net/http"

	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile"
	"github.com/vfg2006/creator-pitch-api/internal/api/handler/router"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/activity"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/outreach"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/pitching"
	"github.com/vfg2006/creator-pitch-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BrandActivity(service activity.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/brands/:id/activity",
			Method:      http.MethodGet,
			Handler:     GetBrandActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Outreach(service outreach.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/outreach",
			Method:      http.MethodGet,
			Handler:     ListOutreach(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/outreach/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateOutreach(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pitch/sent",
			Method:      http.MethodPost,
			Handler:     RecordPitchSent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pitch/sent",
			Method:      http.MethodGet,
			Handler:     CheckPitchSent(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Pitch(service pitching.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pitch/generate",
			Method:      http.MethodPost,
			Handler:     GeneratePitch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pitch/refine",
			Method:      http.MethodPost,
			Handler:     RefinePitch(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Creators(fetcher profile.ProfileFetcher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/creators/:username",
			Method:      http.MethodGet,
			Handler:     GetCreatorProfile(fetcher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
