package services

import (
	"context"

	"github.com/sumitsaluja27/n8n-Workflow/internal/logging"
	"github.com/sumitsaluja27/n8n-Workflow/internal/repository"
	"github.com/sumitsaluja27/n8n-Workflow/pkg/models"
)

// Transformer fills in missing descriptions and translations on workflow records.
type Transformer struct {
	store  repository.RecordStore
	locale string
	logger *logging.Logger
}

// NewTransformer creates a new Transformer that synthesizes translations for locale.
func NewTransformer(store repository.RecordStore, locale string, logger *logging.Logger) *Transformer {
	return &Transformer{
		store:  store,
		locale: locale,
		logger: logger,
	}
}

// Locale returns the locale of synthesized translations.
func (t *Transformer) Locale() string {
	return t.locale
}

// Transform applies the defaults to rec in memory and returns the keys it
// added. An absent description becomes "". Absent translations become a single
// entry for the target locale copying the raw name and description values;
// this needs a name, and rec is left untouched when it has none. Existing translations are
// never modified.
func (t *Transformer) Transform(rec *models.Record) ([]string, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	var added []string
	if rec.Description == nil {
		if err := rec.SetDescription(""); err != nil {
			return nil, err
		}
		added = append(added, models.FieldDescription)
	}

	if rec.Translations == nil {
		translations := models.Translations{
			t.locale: {
				Name:        rec.Name,
				Description: rec.Description,
			},
		}
		if err := rec.SetTranslations(translations); err != nil {
			return nil, err
		}
		added = append(added, models.FieldTranslations)
	}

	return added, nil
}

// TransformFile loads the named record, transforms it and writes it back.
// Failures are reported in the Result, never returned.
func (t *Transformer) TransformFile(ctx context.Context, file string) Result {
	result := Result{File: file}

	rec, err := t.store.Load(ctx, file)
	if err != nil {
		result.Err = err
		return result
	}

	added, err := t.Transform(rec)
	if err != nil {
		result.Err = err
		return result
	}

	if err := t.store.Save(ctx, file, rec); err != nil {
		result.Err = err
		return result
	}

	result.Added = added
	t.logger.Debug("Record transformed", "file", file, "added", added)
	return result
}
