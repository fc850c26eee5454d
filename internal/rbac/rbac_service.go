package rbac

import (
	"sort"
	"sync"

	"github.com/SirTuppy/route-setter-scheduler/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

// NewService loads DefaultPolicy into the enforcer.
func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	s := &service{enforcer: enforcer, logger: l}
	if err := s.loadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicy() error {
	s.enforcer.ClearPolicy()

	for role, parent := range RoleParents {
		if _, err := s.enforcer.AddGroupingPolicy(role, parent); err != nil {
			return err
		}
	}

	count := 0
	for role, perms := range DefaultPolicy {
		for _, p := range perms {
			if _, err := s.enforcer.AddPolicy(role, p.Resource, p.Action); err != nil {
				return err
			}
			count++
		}
	}
	s.logger.Debug("rbac policy loaded", zap.Int("permissions", count))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !domain.ValidRole(req.Role) {
		s.logger.Warn("rbac enforce unknown role",
			zap.String("user_id", req.UserID),
			zap.String("role", req.Role),
		)
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed", zap.Error(err))
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Permissions(role string) ([]domain.PermissionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		out = append(out, domain.PermissionResponse{Role: p[0], Resource: p[1], Action: p[2]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Action < out[j].Action
	})
	return out, nil
}
