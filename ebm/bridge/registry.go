package bridge

import (
	"sort"
	"sync"

	"github.com/YuminosukeSato/goebm/pkg/errors"
	"github.com/YuminosukeSato/goebm/pkg/log"
)

// LossFactory builds a loss handle for one compute zone. The spec string
// carries the textual loss description ("log_loss", "pseudo_huber:delta=1.5").
type LossFactory func(cfg Config, spec string) (*Handle, error)

// MetricFactory validates that a metric described by spec can be computed in
// the zone. Metric evaluation itself runs through the loss handle.
type MetricFactory func(cfg Config, spec string) error

type zoneEntry struct {
	loss   LossFactory
	metric MetricFactory
}

var (
	registryMu sync.RWMutex
	zones      = map[Zone]zoneEntry{}
)

// RegisterZone registers the factories for a compute zone. It is intended to
// be called from the init function of the package implementing the zone.
//
// Registering the same zone twice, or registering a nil loss factory, is a
// programming error and panics. The metric factory may be nil for zones that
// only apply updates.
func RegisterZone(z Zone, loss LossFactory, metric MetricFactory) {
	if loss == nil {
		panic("bridge: RegisterZone called with nil loss factory for " + z.String())
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := zones[z]; ok {
		panic("bridge: RegisterZone called twice for " + z.String())
	}
	zones[z] = zoneEntry{loss: loss, metric: metric}

	log.GetLoggerWithName("bridge.registry").Debug("compute zone registered",
		log.ZoneKey, z.String(),
		log.BackendKey, z.Backend.String(),
		log.PrecisionKey, int(z.Precision),
	)
}

// NewLoss creates a loss handle in the given zone.
//
// An unregistered zone yields ErrUnsupportedBackend. Factory panics are
// converted into errors so that a broken loss implementation cannot take the
// caller down.
func NewLoss(z Zone, cfg Config, spec string) (*Handle, error) {
	registryMu.RLock()
	entry, ok := zones[z]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.NewUnsupportedBackendError(z.String())
	}

	var h *Handle
	err := errors.SafeExecute(log.OperationCreateLoss, func() error {
		var ferr error
		h, ferr = entry.loss(cfg, spec)
		return ferr
	})
	if err != nil {
		log.GetLoggerWithName("bridge.registry").Warn("loss creation failed",
			log.ZoneKey, z.String(),
			log.LossSpecKey, spec,
			log.ErrAttrKey, err,
		)
		return nil, err
	}
	return h, nil
}

// NewMetric checks that the zone can evaluate the metric described by spec.
func NewMetric(z Zone, cfg Config, spec string) error {
	registryMu.RLock()
	entry, ok := zones[z]
	registryMu.RUnlock()

	if !ok || entry.metric == nil {
		return errors.NewUnsupportedBackendError(z.String())
	}

	err := errors.SafeExecute(log.OperationCreateMetric, func() error {
		return entry.metric(cfg, spec)
	})
	if err != nil {
		log.GetLoggerWithName("bridge.registry").Warn("metric creation failed",
			log.ZoneKey, z.String(),
			log.LossSpecKey, spec,
			log.ErrAttrKey, err,
		)
	}
	return err
}

// Zones returns the registered zones ordered by backend, then precision.
func Zones() []Zone {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Zone, 0, len(zones))
	for z := range zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Backend != out[j].Backend {
			return out[i].Backend < out[j].Backend
		}
		return out[i].Precision < out[j].Precision
	})
	return out
}
