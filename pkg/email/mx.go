package email

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"
)

// DomainVerifier reports whether an email domain is able to receive mail.
type DomainVerifier interface {
	HasMXRecords(ctx context.Context, address string) bool
}

// MXVerifier checks the domain part of an address against DNS MX records.
type MXVerifier struct {
	resolver *net.Resolver
	timeout  time.Duration
}

func NewMXVerifier(timeout time.Duration) *MXVerifier {
	return &MXVerifier{
		resolver: net.DefaultResolver,
		timeout:  timeout,
	}
}

func (v *MXVerifier) HasMXRecords(ctx context.Context, address string) bool {
	domain, err := domainPart(address)
	if err != nil {
		return false
	}

	lookupCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	records, err := v.resolver.LookupMX(lookupCtx, domain)
	if err != nil {
		return false
	}

	return len(records) > 0
}

func domainPart(address string) (string, error) {
	at := strings.LastIndex(address, "@")
	if at < 0 || at == len(address)-1 {
		return "", fmt.Errorf("address %q has no domain part", address)
	}

	return address[at+1:], nil
}
