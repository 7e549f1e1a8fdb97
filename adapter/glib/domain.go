package glib

import (
	"github.com/trickstertwo/glogger"
	"github.com/trickstertwo/glogger/native"
)

type domainKind uint8

const (
	domainNone domainKind = iota
	domainFixed
	domainTarget
)

// TargetDomainSpec is the textual form of RecordTarget in ParseDomainPolicy.
const TargetDomainSpec = "@target"

// DomainPolicy decides which GLib log domain a record is written under.
// The zero value is NoDomain.
type DomainPolicy struct {
	kind domainKind
	name string
}

// NoDomain writes every record with the NULL domain.
func NoDomain() DomainPolicy { return DomainPolicy{} }

// FixedDomain writes every record under d, whatever the call site.
func FixedDomain(d string) DomainPolicy { return DomainPolicy{kind: domainFixed, name: d} }

// RecordTarget writes each record under its own target: the per-call
// override, else the Scope's declared domain, else the calling package path.
func RecordTarget() DomainPolicy { return DomainPolicy{kind: domainTarget} }

// ParseDomainPolicy maps "" to NoDomain, "@target" to RecordTarget and any
// other string to FixedDomain.
func ParseDomainPolicy(s string) DomainPolicy {
	switch s {
	case "":
		return NoDomain()
	case TargetDomainSpec:
		return RecordTarget()
	default:
		return FixedDomain(s)
	}
}

// Resolve returns the domain for rec; "" means no domain.
func (p DomainPolicy) Resolve(rec *glogger.Record) string {
	switch p.kind {
	case domainFixed:
		return p.name
	case domainTarget:
		return rec.Target
	default:
		return ""
	}
}

func (p DomainPolicy) String() string {
	switch p.kind {
	case domainFixed:
		return p.name
	case domainTarget:
		return TargetDomainSpec
	default:
		return ""
	}
}

// resolveDomain applies the policy and drops domains that cannot be passed
// to GLib. An unusable category tag never fails the log call.
func resolveDomain(p DomainPolicy, rec *glogger.Record) string {
	d := p.Resolve(rec)
	if !native.Encodable(d) {
		return ""
	}
	return d
}
