package resolver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/aqua-prebuild/internal/storage"
)

// CredentialsShape is the minimal config layout operators are asked to fill in
// after the example template has been copied.
const CredentialsShape = `{"wifi": {"ssid": "YOUR_SSID", "password": "YOUR_PASSWORD"}}`

type fileResolver struct {
	store  storage.FileStore
	logger *zap.Logger
}

// New creates a Resolver that checks and copies files through store.
func New(store storage.FileStore, logger *zap.Logger) Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fileResolver{store: store, logger: logger}
}

// Resolve makes sure the target config exists under root. Sources are tried
// in fixed order: existing target, private config, example template.
// An existing target is never overwritten, whatever its content.
func (r *fileResolver) Resolve(root string) (Outcome, error) {
	paths := PathsFor(root)

	found, err := r.store.Exists(paths.Target)
	if err != nil {
		return 0, fmt.Errorf("check target config: %w", err)
	}
	if found {
		r.logger.Info("config.json found", zap.String("path", paths.Target))
		return OutcomeFound, nil
	}

	r.logger.Warn("config.json not found", zap.String("path", paths.Target))

	hasPrivate, err := r.store.Exists(paths.Private)
	if err != nil {
		return 0, fmt.Errorf("check private config: %w", err)
	}
	if hasPrivate {
		r.logger.Info("copying from private config", zap.String("source", paths.Private))
		if err := r.store.Copy(paths.Private, paths.Target); err != nil {
			return 0, fmt.Errorf("copy %s: %w", paths.Private, err)
		}
		r.logger.Info("created config.json from private config",
			zap.String("source", paths.Private),
			zap.String("path", paths.Target),
		)
		return OutcomeCopiedPrivate, nil
	}

	hasExample, err := r.store.Exists(paths.Example)
	if err != nil {
		return 0, fmt.Errorf("check example config: %w", err)
	}
	if hasExample {
		r.logger.Info("copying config.example.json to config.json", zap.String("source", paths.Example))
		if err := r.store.Copy(paths.Example, paths.Target); err != nil {
			return 0, fmt.Errorf("copy %s: %w", paths.Example, err)
		}
		r.logger.Info("created config.json from template", zap.String("path", paths.Target))
		r.logger.Warn("IMPORTANT: edit data/config.json with your WiFi credentials: "+CredentialsShape,
			zap.String("path", paths.Target),
		)
		return OutcomeCopiedExample, nil
	}

	missing := &MissingSourceError{Candidates: []string{paths.Private, paths.Example}}
	r.logger.Error("no config source found",
		zap.String("private_config", paths.Private),
		zap.String("example_config", paths.Example),
	)
	return 0, missing
}
