package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiPrefix       = "/api"
	casbinTableName = "casbin_rule"
	adminSubjectFmt = "admin:%d"
	rolePrefix      = "role:"

	// roleAnchor is a reserved grouping target. Every role is linked to it
	// so roles without members or policies still survive a reload.
	roleAnchor = "role:__anchor__"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

var errUnavailable = errors.New("authz service unavailable")

// Policy one authorization rule
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// Service wraps a Casbin enforcer backed by the main database.
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService creates the authorization service
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, errors.New("authz db is nil")
	}

	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter: %w", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parse authz model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("build authz enforcer: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

func (s *Service) guard() (*casbin.SyncedEnforcer, error) {
	if s == nil || s.enforcer == nil {
		return nil, errUnavailable
	}
	return s.enforcer, nil
}

// Enforcer returns the underlying enforcer
func (s *Service) Enforcer() *casbin.SyncedEnforcer {
	e, _ := s.guard()
	return e
}

// Enforce runs an authorization check
func (s *Service) Enforce(sub, obj, act string) (bool, error) {
	e, err := s.guard()
	if err != nil {
		return false, err
	}
	return e.Enforce(strings.TrimSpace(sub), NormalizeObject(obj), NormalizeAction(act))
}

// EnforceAdmin runs an authorization check for an admin ID
func (s *Service) EnforceAdmin(adminID uint, obj, act string) (bool, error) {
	return s.Enforce(SubjectForAdmin(adminID), obj, act)
}

// ReloadPolicy reloads policies from storage
func (s *Service) ReloadPolicy() error {
	e, err := s.guard()
	if err != nil {
		return err
	}
	return e.LoadPolicy()
}

// EnsureRole creates the role if it does not exist yet and returns its
// canonical name.
func (s *Service) EnsureRole(role string) (string, error) {
	name, err := NormalizeRole(role)
	if err != nil {
		return "", err
	}
	if name == roleAnchor {
		return "", errors.New("reserved role is not allowed")
	}
	e, err := s.guard()
	if err != nil {
		return "", err
	}

	exists, err := e.HasNamedGroupingPolicy("g", name, roleAnchor)
	if err != nil {
		return "", fmt.Errorf("check role: %w", err)
	}
	if !exists {
		if _, err := e.AddNamedGroupingPolicy("g", name, roleAnchor); err != nil {
			return "", fmt.Errorf("create role: %w", err)
		}
	}
	return name, nil
}

// ListRoles lists known roles
func (s *Service) ListRoles() ([]string, error) {
	e, err := s.guard()
	if err != nil {
		return nil, err
	}
	rules, err := e.GetFilteredNamedGroupingPolicy("g", 0)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	seen := make(map[string]struct{})
	for _, rule := range rules {
		for _, field := range rule {
			if strings.HasPrefix(field, rolePrefix) && field != roleAnchor {
				seen[field] = struct{}{}
			}
		}
	}
	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles, nil
}

// GrantRolePolicy grants a policy to a role
func (s *Service) GrantRolePolicy(role, object, action string) error {
	name, err := s.EnsureRole(role)
	if err != nil {
		return err
	}
	obj, act := NormalizeObject(object), NormalizeAction(action)
	if act == "" {
		return errors.New("action is required")
	}
	e, err := s.guard()
	if err != nil {
		return err
	}
	if _, err := e.AddPolicy(name, obj, act); err != nil {
		return fmt.Errorf("grant policy: %w", err)
	}
	return nil
}

// RevokeRolePolicy revokes a policy from a role
func (s *Service) RevokeRolePolicy(role, object, action string) error {
	name, err := NormalizeRole(role)
	if err != nil {
		return err
	}
	obj, act := NormalizeObject(object), NormalizeAction(action)
	if act == "" {
		return errors.New("action is required")
	}
	e, err := s.guard()
	if err != nil {
		return err
	}
	if _, err := e.RemovePolicy(name, obj, act); err != nil {
		return fmt.Errorf("revoke policy: %w", err)
	}
	return nil
}

// GetRolePolicies lists a role's policies
func (s *Service) GetRolePolicies(role string) ([]Policy, error) {
	name, err := NormalizeRole(role)
	if err != nil {
		return nil, err
	}
	e, err := s.guard()
	if err != nil {
		return nil, err
	}
	rules, err := e.GetFilteredPolicy(0, name)
	if err != nil {
		return nil, fmt.Errorf("get role policies: %w", err)
	}

	policies := make([]Policy, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		policies = append(policies, Policy{
			Subject: strings.TrimSpace(rule[0]),
			Object:  NormalizeObject(rule[1]),
			Action:  NormalizeAction(rule[2]),
		})
	}
	return policies, nil
}

// SetAdminRoles replaces an admin's role assignments
func (s *Service) SetAdminRoles(adminID uint, roles []string) error {
	if adminID == 0 {
		return errors.New("admin id is required")
	}
	e, err := s.guard()
	if err != nil {
		return err
	}
	subject := SubjectForAdmin(adminID)

	if _, err := e.RemoveFilteredNamedGroupingPolicy("g", 0, subject); err != nil {
		return fmt.Errorf("clear admin roles: %w", err)
	}
	for _, role := range roles {
		name, err := s.EnsureRole(role)
		if err != nil {
			return err
		}
		if _, err := e.AddNamedGroupingPolicy("g", subject, name); err != nil {
			return fmt.Errorf("assign admin role: %w", err)
		}
	}
	return nil
}

// GetAdminRoles lists an admin's roles
func (s *Service) GetAdminRoles(adminID uint) ([]string, error) {
	if adminID == 0 {
		return nil, errors.New("admin id is required")
	}
	e, err := s.guard()
	if err != nil {
		return nil, err
	}
	assigned, err := e.GetRolesForUser(SubjectForAdmin(adminID))
	if err != nil {
		return nil, fmt.Errorf("get admin roles: %w", err)
	}

	roles := make([]string, 0, len(assigned))
	for _, role := range assigned {
		if strings.HasPrefix(role, rolePrefix) && role != roleAnchor {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles, nil
}

// SubjectForAdmin builds the enforcement subject for an admin
func SubjectForAdmin(adminID uint) string {
	return fmt.Sprintf(adminSubjectFmt, adminID)
}

// NormalizeRole canonicalizes a role name
func NormalizeRole(role string) (string, error) {
	name := strings.ReplaceAll(strings.TrimSpace(role), " ", "_")
	if name != "" && !strings.HasPrefix(name, rolePrefix) {
		name = rolePrefix + name
	}
	if len(name) <= len(rolePrefix) {
		return "", errors.New("role is required")
	}
	return name, nil
}

// NormalizeObject canonicalizes a resource path, stripping the API prefix
func NormalizeObject(object string) string {
	path := strings.TrimSpace(object)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	switch {
	case path == apiPrefix:
		return "/"
	case strings.HasPrefix(path, apiPrefix+"/"):
		return strings.TrimPrefix(path, apiPrefix)
	}
	return path
}

// NormalizeAction canonicalizes an action
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
