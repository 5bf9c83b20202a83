package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase1Correct(t *testing.T) {
	obj := &Phase1{
		Descr:     "t0",
		EnableDpd: true,
	}
	obj.Correct()
	assert.Equal(t, "inet", obj.Protocol, "default protocol")
	assert.Equal(t, "myaddress", obj.MyIdType, "default myid_type")
	assert.Equal(t, "peeraddress", obj.PeerIdType, "default peerid_type")
	assert.Equal(t, 28800, obj.Lifetime, "default lifetime")
	assert.Equal(t, "off", obj.Mobike, "default mobike")
	assert.Equal(t, "on", obj.NatTraversal, "default nat_traversal")
	assert.Equal(t, 10, obj.DpdDelay, "default dpd_delay")
	assert.Equal(t, 5, obj.DpdMaxFail, "default dpd_maxfail")
}

func TestPhase1CorrectNoDpd(t *testing.T) {
	obj := &Phase1{
		Descr:    "t0",
		DpdDelay: 20,
	}
	obj.Correct()
	assert.Equal(t, 0, obj.DpdDelay, "dpd disabled")
	assert.Equal(t, 0, obj.DpdMaxFail, "dpd disabled")
}

func TestIPsecPhase1(t *testing.T) {
	spec := &IPsec{}
	assert.True(t, spec.AddPhase1(&Phase1{Descr: "t0", Lifetime: 28800}), "add t0")
	assert.True(t, spec.AddPhase1(&Phase1{Descr: "t1"}), "add t1")
	assert.False(t, spec.AddPhase1(&Phase1{Descr: "t0"}), "t0 exists")
	assert.Equal(t, 2, len(spec.Phase1), "two entries")

	obj, index := spec.FindPhase1("t0")
	assert.NotNil(t, obj, "find t0")
	assert.Equal(t, 0, index, "t0 first")
	assert.Equal(t, 28800, obj.Lifetime, "t0 lifetime")

	assert.True(t, spec.SetPhase1(&Phase1{Descr: "t0", Lifetime: 3600}), "set t0")
	obj, _ = spec.FindPhase1("t0")
	assert.Equal(t, 3600, obj.Lifetime, "t0 updated")
	assert.False(t, spec.SetPhase1(&Phase1{Descr: "t9"}), "t9 missing")

	_, removed := spec.DelPhase1("t0")
	assert.True(t, removed, "del t0")
	obj, index = spec.FindPhase1("t0")
	assert.Nil(t, obj, "t0 gone")
	assert.Equal(t, -1, index, "t0 gone")
	_, removed = spec.DelPhase1("t0")
	assert.False(t, removed, "t0 already gone")
}

func TestIPsecClone(t *testing.T) {
	spec := &IPsec{}
	spec.AddPhase1(&Phase1{Descr: "t0", Lifetime: 28800})
	undo := spec.Clone()

	obj, _ := spec.FindPhase1("t0")
	obj.Lifetime = 3600
	spec.AddPhase1(&Phase1{Descr: "t1"})

	assert.Equal(t, 1, len(undo.Phase1), "clone keeps one entry")
	was, _ := undo.FindPhase1("t0")
	assert.Equal(t, 28800, was.Lifetime, "clone untouched")
}
