package rbac

import (
	"github.com/casbin/casbin/v2"
)

// Service menjawab apakah sebuah role boleh melakukan action pada
// resource. Policy statis dari file; role adalah subject casbin.
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
