package hodconsole

import (
	"context"
	"fmt"
	"time"

	domclass "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/class"
	domprof "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/professor"
	domstudent "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/domain/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/listcache"
	authrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/auth"
	classrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/class"
	professorrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/professor"
	studentrepo "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/repository/student"
	"github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/restapi"
	batchuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/batch"
	classuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/class"
	professoruc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/professor"
	studentuc "github.com/SinghShubhamkumarkrishnadev/hodconsole/internal/usecase/student"
)

const defaultCacheSize = 8

// Client is the hodconsole SDK entry point.
type Client struct {
	api          *restapi.Client
	authRepo     *authrepo.Repo
	studentSvc   *studentuc.Service
	professorSvc *professoruc.Service
	classSvc     *classuc.Service
	batchSvc     *batchuc.Service
	obs          *observer
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		concurrency: batchuc.DefaultConcurrency,
		cacheTTL:    listcache.DefaultTTL,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	api, err := restapi.New(restapi.Config{
		BaseURL:    baseURL,
		Token:      cfg.token,
		HTTPClient: cfg.httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("hodconsole: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(api, cfg, obs), nil
}

func wireClient(api *restapi.Client, cfg *clientConfig, obs *observer) *Client {
	studentRepo := studentrepo.New(api)
	professorRepo := professorrepo.New(api)
	classRepo := classrepo.New(api)

	studentSvc := studentuc.New(studentRepo, listcache.New[domstudent.Student](defaultCacheSize, cfg.cacheTTL))
	professorSvc := professoruc.New(professorRepo, listcache.New[domprof.Professor](defaultCacheSize, cfg.cacheTTL))
	classSvc := classuc.New(classRepo, listcache.New[domclass.Class](defaultCacheSize, cfg.cacheTTL))

	batchSvc := batchuc.New(studentRepo, studentRepo, professorRepo, classRepo).
		WithConcurrency(cfg.concurrency)

	return &Client{
		api:          api,
		authRepo:     authrepo.New(api),
		studentSvc:   studentSvc,
		professorSvc: professorSvc,
		classSvc:     classSvc,
		batchSvc:     batchSvc,
		obs:          obs,
	}
}

// Login authenticates the HOD and stores the returned backend token on the
// client for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (h HOD, err error) {
	start := time.Now()
	defer func() { c.obs.observe("login", start, err) }()

	identity, token, err := c.authRepo.Login(ctx, email, password)
	if err != nil {
		return HOD{}, fmt.Errorf("login: %w", err)
	}
	c.api.SetToken(token)
	return fromInternalHOD(identity), nil
}

// SetToken replaces the backend bearer token (e.g. one issued out-of-band).
func (c *Client) SetToken(token string) {
	c.api.SetToken(token)
}

// Token returns the backend bearer token currently held by the client,
// so callers can persist it across processes.
func (c *Client) Token() string {
	return c.api.Token()
}

// Students returns the student service.
func (c *Client) Students() *StudentService {
	return &StudentService{svc: c.studentSvc, batch: c.batchSvc, obs: c.obs}
}

// Professors returns the professor service.
func (c *Client) Professors() *ProfessorService {
	return &ProfessorService{svc: c.professorSvc, batch: c.batchSvc, obs: c.obs}
}

// Classes returns the class service.
func (c *Client) Classes() *ClassService {
	svc := &ClassService{svc: c.classSvc, batch: c.batchSvc, obs: c.obs}
	svc.invalidate = func() {
		c.studentSvc.InvalidateCache()
		c.professorSvc.InvalidateCache()
	}
	return svc
}
