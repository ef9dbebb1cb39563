package adapters

import (
	"context"

	"netmotive-switcher/internal/domain/errors"
	"netmotive-switcher/internal/domain/interfaces"

	psnet "github.com/shirou/gopsutil/v4/net"
)

// PsutilAdapterLister is an AdapterLister implementation backed by
// gopsutil's network interface enumeration
type PsutilAdapterLister struct{}

// NewPsutilAdapterLister creates a new PsutilAdapterLister
func NewPsutilAdapterLister() interfaces.AdapterLister {
	return &PsutilAdapterLister{}
}

// ListAdapters returns the names of all network adapters on the host
func (l *PsutilAdapterLister) ListAdapters(ctx context.Context) ([]string, error) {
	stats, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, errors.NewSystemError("failed to enumerate network adapters", err)
	}

	names := make([]string, 0, len(stats))
	for _, stat := range stats {
		names = append(names, stat.Name)
	}
	return names, nil
}
