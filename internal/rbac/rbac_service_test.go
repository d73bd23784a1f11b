package rbac

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/stretchr/testify/assert"
)

const testModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

const testPolicy = `p, admin, guards, write
p, admin, attendances, read
p, guard, attendances, write
`

func newTestService(t *testing.T) Service {
	t.Helper()

	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.conf")
	policyPath := filepath.Join(dir, "policy.csv")
	assert.NoError(t, os.WriteFile(modelPath, []byte(testModel), 0o600))
	assert.NoError(t, os.WriteFile(policyPath, []byte(testPolicy), 0o600))

	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	assert.NoError(t, err)

	return NewService(enforcer)
}

func TestService_Enforce(t *testing.T) {
	svc := newTestService(t)

	allowed, err := svc.Enforce("guard", "attendances", "write")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce("admin", "attendances", "write")
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.Enforce("guard", "guards", "write")
	assert.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.Enforce("", "attendances", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)
}
