package ipsec

import (
	"errors"
	"testing"

	co "github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/openfw/pfsec/pkg/schema"
	"github.com/stretchr/testify/assert"
)

type fakeEngine struct {
	begun      int
	committed  int
	rolledBack int
	configured []*co.Phase1
	removed    []string
	commands   []string
	failWith   error
}

func (e *fakeEngine) Begin() {
	e.begun++
}

func (e *fakeEngine) ConfigurePhase1(cfg *co.Phase1) ([]string, error) {
	if e.failWith != nil {
		return nil, e.failWith
	}
	e.configured = append(e.configured, cfg)
	return e.commands, nil
}

func (e *fakeEngine) RemovePhase1(descr string) ([]string, error) {
	if e.failWith != nil {
		return nil, e.failWith
	}
	e.removed = append(e.removed, descr)
	return e.commands, nil
}

func (e *fakeEngine) Commit() error {
	e.committed++
	return nil
}

func (e *fakeEngine) Rollback() {
	e.rolledBack++
}

func TestModuleInvalid(t *testing.T) {
	engine := &fakeEngine{}
	m := NewModule(engine)
	result, err := m.Run(phase1(func(d *schema.Phase1) {
		d.IkeType = "ikev3"
	}))
	assert.Error(t, err, "invalid iketype")
	assert.Nil(t, result, "no result")
	assert.Equal(t, 0, len(engine.configured), "engine untouched")
	assert.Equal(t, 0, engine.committed, "no commit")
}

func TestModuleCreate(t *testing.T) {
	engine := &fakeEngine{commands: []string{"create ipsec 'test_tunnel', iketype='ikev2'"}}
	m := NewModule(engine)
	result, err := m.Run(phase1(nil))
	assert.NoError(t, err, "create")
	assert.True(t, result.Changed, "changed")
	assert.Equal(t, engine.commands, result.Commands, "commands")
	assert.Equal(t, 1, engine.committed, "committed")
	assert.Equal(t, 0, engine.rolledBack, "no rollback")

	cfg := engine.configured[0]
	assert.Equal(t, "test_tunnel", cfg.Descr, "descr")
	assert.Equal(t, 28800, cfg.Lifetime, "default lifetime")
	assert.Equal(t, "inet", cfg.Protocol, "default protocol")
	assert.True(t, cfg.EnableDpd, "dpd defaults on")
	assert.Equal(t, 10, cfg.DpdDelay, "default dpd_delay")
}

func TestModuleNoChange(t *testing.T) {
	engine := &fakeEngine{}
	m := NewModule(engine)
	result, err := m.Run(phase1(nil))
	assert.NoError(t, err, "no change")
	assert.False(t, result.Changed, "unchanged")
	assert.Equal(t, 1, engine.committed, "commit still runs")
}

func TestModuleCheckMode(t *testing.T) {
	engine := &fakeEngine{commands: []string{"create ipsec 'test_tunnel'"}}
	m := NewModule(engine)
	m.CheckMode = true
	result, err := m.Run(phase1(nil))
	assert.NoError(t, err, "check mode")
	assert.True(t, result.Changed, "changed")
	assert.Equal(t, 0, engine.committed, "no commit")
	assert.Equal(t, 1, engine.rolledBack, "rolled back")
}

func TestModuleNoApply(t *testing.T) {
	engine := &fakeEngine{commands: []string{"create ipsec 'test_tunnel'"}}
	m := NewModule(engine)
	result, err := m.Run(phase1(func(d *schema.Phase1) {
		d.Apply = pBool(false)
	}))
	assert.NoError(t, err, "staged")
	assert.True(t, result.Changed, "changed")
	assert.Equal(t, 0, engine.committed, "staged, not committed")
	assert.Equal(t, 0, engine.rolledBack, "staged, not rolled back")
}

func TestModuleAbsent(t *testing.T) {
	engine := &fakeEngine{commands: []string{"delete ipsec 'test_tunnel'"}}
	m := NewModule(engine)
	result, err := m.Run(&schema.Phase1{
		Descr: "test_tunnel",
		State: "absent",
	})
	assert.NoError(t, err, "absent")
	assert.True(t, result.Changed, "changed")
	assert.Equal(t, []string{"test_tunnel"}, engine.removed, "removed")
	assert.Equal(t, 1, engine.committed, "committed")
}

func TestModuleEngineError(t *testing.T) {
	engine := &fakeEngine{failWith: libfw.NewErr("remote_gateway 1.2.3.4 already used by 't1'")}
	m := NewModule(engine)
	result, err := m.Run(phase1(nil))
	assert.Error(t, err, "engine error")
	assert.Nil(t, result, "no result")
	assert.Equal(t, 1, engine.rolledBack, "rolled back")
	assert.Equal(t, 0, engine.committed, "no commit")
	var bad *InvalidError
	assert.False(t, errors.As(err, &bad), "not a schema error")
}

func TestCreateCommand(t *testing.T) {
	cfg, err := Load(phase1(nil))
	assert.NoError(t, err, "load")
	value := CreateCommand(cfg)
	assert.Equal(t, "create ipsec 'test_tunnel', iketype='ikev2', protocol='inet', "+
		"interface='wan', remote_gateway='1.2.3.4', authentication_method='pre_shared_key', "+
		"myid_type='myaddress', peerid_type='peeraddress', preshared_key='azerty123', "+
		"lifetime='28800', mobike='off', nat_traversal='on', enable_dpd='True', "+
		"dpd_delay='10', dpd_maxfail='5'", value, "create command")
}

func TestDiffPhase1(t *testing.T) {
	obj, err := Load(phase1(nil))
	assert.NoError(t, err, "load obj")
	cfg, err := Load(phase1(func(d *schema.Phase1) {
		d.Lifetime = pInt(3600)
	}))
	assert.NoError(t, err, "load cfg")

	assert.Equal(t, 0, len(DiffPhase1(obj, obj)), "no diff")
	sets := DiffPhase1(obj, cfg)
	assert.Equal(t, []string{"lifetime='3600'"}, sets, "one diff")
	assert.Equal(t, "update ipsec 'test_tunnel' set lifetime='3600'",
		UpdateCommand(cfg, sets), "update command")
	assert.Equal(t, "delete ipsec 'test_tunnel'", DeleteCommand("test_tunnel"), "delete command")
}
