package vpn

import (
	"path/filepath"
	"testing"

	co "github.com/openfw/pfsec/pkg/config"
	"github.com/openfw/pfsec/pkg/libfw"
	"github.com/openfw/pfsec/pkg/schema"
	"github.com/stretchr/testify/assert"
)

func newTestWorker(t *testing.T) *Worker {
	c := &co.Daemon{
		ConfDir:  t.TempDir(),
		IPsecDir: t.TempDir(),
	}
	return NewWorker(c)
}

func newTestPhase1(descr, gateway string) *schema.Phase1 {
	return &schema.Phase1{
		Descr:                descr,
		IkeType:              "ikev2",
		Interface:            "wan",
		RemoteGateway:        gateway,
		AuthenticationMethod: "pre_shared_key",
		PresharedKey:         "azerty123",
	}
}

func TestWorkerCreate(t *testing.T) {
	w := newTestWorker(t)
	result, err := w.RunPhase1(newTestPhase1("t0", "1.2.3.4"), false)
	assert.NoError(t, err, "create")
	assert.True(t, result.Changed, "changed")
	assert.Equal(t, 1, len(result.Commands), "one command")
	assert.Contains(t, result.Commands[0], "create ipsec 't0'", "create command")

	obj, _ := w.spec.FindPhase1("t0")
	assert.NotNil(t, obj, "entry stored")
	assert.Equal(t, 28800, obj.Lifetime, "defaults applied")
	assert.NoError(t, libfw.FileExist(w.conf.IPsecFile()), "entry list persisted")
	assert.NoError(t, libfw.FileExist(
		filepath.Join(w.conf.IPsecDir, "con_t0.conf")), "conn rendered")
	assert.NoError(t, libfw.FileExist(
		filepath.Join(w.conf.IPsecDir, "con_t0.secrets")), "secret rendered")

	result, err = w.RunPhase1(newTestPhase1("t0", "1.2.3.4"), false)
	assert.NoError(t, err, "idempotent")
	assert.False(t, result.Changed, "no change on repeat")
	assert.Equal(t, 0, len(result.Commands), "no commands on repeat")
}

func TestWorkerUpdate(t *testing.T) {
	w := newTestWorker(t)
	_, err := w.RunPhase1(newTestPhase1("t0", "1.2.3.4"), false)
	assert.NoError(t, err, "create")

	data := newTestPhase1("t0", "1.2.3.4")
	lifetime := 3600
	data.Lifetime = &lifetime
	result, err := w.RunPhase1(data, false)
	assert.NoError(t, err, "update")
	assert.True(t, result.Changed, "changed")
	assert.Equal(t, []string{"update ipsec 't0' set lifetime='3600'"},
		result.Commands, "update command")

	obj, _ := w.spec.FindPhase1("t0")
	assert.Equal(t, 3600, obj.Lifetime, "entry updated")
}

func TestWorkerRemove(t *testing.T) {
	w := newTestWorker(t)
	_, err := w.RunPhase1(newTestPhase1("t0", "1.2.3.4"), false)
	assert.NoError(t, err, "create")

	data := &schema.Phase1{Descr: "t0", State: "absent"}
	result, err := w.RunPhase1(data, false)
	assert.NoError(t, err, "remove")
	assert.True(t, result.Changed, "changed")
	assert.Equal(t, []string{"delete ipsec 't0'"}, result.Commands, "delete command")
	obj, _ := w.spec.FindPhase1("t0")
	assert.Nil(t, obj, "entry gone")
	assert.Error(t, libfw.FileExist(
		filepath.Join(w.conf.IPsecDir, "con_t0.conf")), "conn removed")

	result, err = w.RunPhase1(data, false)
	assert.NoError(t, err, "remove again")
	assert.False(t, result.Changed, "nothing to remove")
}

func TestWorkerCheckMode(t *testing.T) {
	w := newTestWorker(t)
	result, err := w.RunPhase1(newTestPhase1("t0", "1.2.3.4"), true)
	assert.NoError(t, err, "check create")
	assert.True(t, result.Changed, "would change")
	obj, _ := w.spec.FindPhase1("t0")
	assert.Nil(t, obj, "nothing stored")
	assert.Error(t, libfw.FileExist(w.conf.IPsecFile()), "nothing persisted")
}

func TestWorkerGwDuplicates(t *testing.T) {
	w := newTestWorker(t)
	_, err := w.RunPhase1(newTestPhase1("t0", "1.2.3.4"), false)
	assert.NoError(t, err, "create t0")

	result, err := w.RunPhase1(newTestPhase1("t1", "1.2.3.4"), false)
	assert.Error(t, err, "duplicate gateway")
	assert.Nil(t, result, "no result")
	obj, _ := w.spec.FindPhase1("t1")
	assert.Nil(t, obj, "t1 not stored")

	data := newTestPhase1("t1", "1.2.3.4")
	yes := true
	data.GwDuplicates = &yes
	result, err = w.RunPhase1(data, false)
	assert.NoError(t, err, "gw_duplicates allows it")
	assert.True(t, result.Changed, "t1 created")
}

func TestWorkerStagedApply(t *testing.T) {
	w := newTestWorker(t)
	data := newTestPhase1("t0", "1.2.3.4")
	no := false
	data.Apply = &no
	result, err := w.RunPhase1(data, false)
	assert.NoError(t, err, "staged")
	assert.True(t, result.Changed, "changed")
	obj, _ := w.spec.FindPhase1("t0")
	assert.NotNil(t, obj, "entry staged")
	assert.Error(t, libfw.FileExist(w.conf.IPsecFile()), "not persisted yet")

	assert.NoError(t, w.ApplyPhase1(), "apply")
	assert.NoError(t, libfw.FileExist(w.conf.IPsecFile()), "persisted")
}

func TestWorkerList(t *testing.T) {
	w := newTestWorker(t)
	_, err := w.RunPhase1(newTestPhase1("t0", "1.2.3.4"), false)
	assert.NoError(t, err, "create t0")
	data := newTestPhase1("t1", "5.6.7.8")
	data.MyIdType = "fqdn"
	data.MyIdData = "left.example.org"
	_, err = w.RunPhase1(data, false)
	assert.NoError(t, err, "create t1")

	var items []schema.Phase1
	w.ListPhase1(func(obj schema.Phase1) {
		items = append(items, obj)
	})
	assert.Equal(t, 2, len(items), "two entries")
	assert.Equal(t, "t0", items[0].Descr, "t0 first")
	assert.Equal(t, "fqdn", items[1].MyIdType, "t1 myid_type kept")
	assert.Equal(t, 28800, *items[0].Lifetime, "lifetime resolved")
}

func TestConnName(t *testing.T) {
	assert.Equal(t, "con_t0", connName("t0"), "plain")
	assert.Equal(t, "con_branch_office", connName("branch office"), "spaces replaced")
}

func TestConnId(t *testing.T) {
	assert.Equal(t, "", connId("myaddress", ""), "address types have no id")
	assert.Equal(t, "@left.example.org", connId("fqdn", "left.example.org"), "fqdn")
	assert.Equal(t, "@#0001", connId("keyid tag", "0001"), "keyid")
	assert.Equal(t, "10.0.0.1", connId("address", "10.0.0.1"), "explicit address")
}
