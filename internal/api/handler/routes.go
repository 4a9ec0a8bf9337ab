package handler

import (
	"net/http"

	"github.com/vfg2006/weekly-rank-digest/internal/api/handler/router"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/authenticating"
	"github.com/vfg2006/weekly-rank-digest/internal/usecases/digest"
)

func Healthcheck() router.Group {
	return router.Group{
		Routes: []router.Route{
			{
				Path:    "/healthcheck",
				Method:  http.MethodGet,
				Handler: HealthcheckHandler(),
			},
		},
	}
}

func Authentication(service authenticating.Authenticator) router.Group {
	return router.Group{
		Prefix: "/v1",
		Routes: []router.Route{
			{
				Path:    "/login",
				Method:  http.MethodPost,
				Handler: Login(service),
			},
			{
				Path:    "/logout",
				Method:  http.MethodPost,
				Handler: Logout(),
			},
			{
				Path:    "/me",
				Method:  http.MethodGet,
				Handler: GetMe(service),
			},
		},
	}
}

func Reports(service digest.DigestService) router.Group {
	return router.Group{
		Prefix: "/v1/reports",
		Routes: []router.Route{
			{
				Path:    "/:domain",
				Method:  http.MethodGet,
				Handler: GetReport(service),
			},
			{
				Path:    "/:domain/periods",
				Method:  http.MethodGet,
				Handler: GetReportPeriods(service),
			},
		},
	}
}

func CronJobs(services CronJobServices) router.Group {
	return router.Group{
		Prefix: "/v1/cron",
		Routes: []router.Route{
			{
				Path:    "/:type/run",
				Method:  http.MethodPost,
				Handler: RunCronJob(services),
			},
			{
				Path:    "/status",
				Method:  http.MethodGet,
				Handler: GetCronStatus(services),
			},
		},
	}
}
