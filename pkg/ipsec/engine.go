package ipsec

import (
	co "github.com/openfw/pfsec/pkg/config"
)

// Engine is the reconciliation backend: it diffs a desired phase1 entry
// against the current configuration, stages the change and commits it to
// the target system. pkg/vpn carries the reference implementation; a
// client for a real firewall can stand in as long as it keeps the same
// contract: Begin snapshots, Configure/Remove only stage, Commit applies,
// Rollback restores the snapshot.
type Engine interface {
	Begin()
	ConfigurePhase1(cfg *co.Phase1) ([]string, error)
	RemovePhase1(descr string) ([]string, error)
	Commit() error
	Rollback()
}
