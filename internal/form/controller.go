package form

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"clubhub-app/internal/assets"
	"clubhub-app/internal/logging"
	"clubhub-app/internal/metrics"
	"clubhub-app/internal/model"
	"clubhub-app/internal/store"
)

// Writer is the create/update half of the data service for one entity.
type Writer[E any] struct {
	Create func(ctx context.Context, entity E) (model.Result, error)
	Update func(ctx context.Context, id string, entity E) (model.Result, error)
}

type Options struct {
	Assets   assets.Resolver
	Reloader Reloader
	Now      func() time.Time
	Logger   logrus.FieldLogger
}

// Controller runs one edit screen: tab switching, edit-load, save, reset.
// It is not safe for concurrent use; each operator session owns one.
type Controller[E any] struct {
	name    string
	form    Form[E]
	write   Writer[E]
	opts    Options
	tab     Tab
	editing string
}

func NewController[E any](name string, f Form[E], w Writer[E], opts Options) *Controller[E] {
	if opts.Assets == nil {
		opts.Assets = assets.Passthrough{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Controller[E]{name: name, form: f, write: w, opts: opts, tab: f.Tabs()[0]}
}

func NewMatchController(s store.Store, opts Options) (*Controller[model.Match], *MatchForm) {
	f := NewMatchForm()
	return NewController[model.Match]("match", f, Writer[model.Match]{Create: s.CreateMatch, Update: s.UpdateMatch}, opts), f
}

func NewNewsController(s store.Store, opts Options) (*Controller[model.NewsArticle], *NewsForm) {
	f := NewNewsForm()
	return NewController[model.NewsArticle]("news", f, Writer[model.NewsArticle]{Create: s.CreateNews, Update: s.UpdateNews}, opts), f
}

func NewProductController(s store.Store, opts Options) (*Controller[model.ShopProduct], *ProductForm) {
	f := NewProductForm()
	return NewController[model.ShopProduct]("product", f, Writer[model.ShopProduct]{Create: s.CreateShopItem, Update: s.UpdateShopItem}, opts), f
}

func (c *Controller[E]) Form() Form[E] { return c.form }

func (c *Controller[E]) Tab() Tab { return c.tab }

// SetTab switches the visible tab. Field state is untouched.
func (c *Controller[E]) SetTab(tab Tab) error {
	if !slices.Contains(c.form.Tabs(), tab) {
		return fmt.Errorf("%w: %s", ErrUnknownTab, tab)
	}
	c.tab = tab
	return nil
}

// Editing is the id of the entity being edited, empty for a new one.
func (c *Controller[E]) Editing() string { return c.editing }

// Edit loads a stored entity into the form for updating.
func (c *Controller[E]) Edit(id string, entity E) {
	c.form.Load(entity)
	c.editing = id
	c.tab = c.form.Tabs()[0]
}

func (c *Controller[E]) Validate() Errors {
	return c.form.Validate(c.opts.Now())
}

// Save validates, resolves pending media, then creates or updates. On
// success the form is reset and the list reloaded. On failure the form
// keeps its state.
func (c *Controller[E]) Save(ctx context.Context) (model.Result, error) {
	log := c.opts.Logger.WithFields(logrus.Fields{"form": c.name, "id": c.editing})

	if errs := c.Validate(); len(errs) > 0 {
		metrics.FormValidationFailures.WithLabelValues(c.name).Inc()
		log.WithField("fields", errs.Fields()).Debug("save blocked by validation")
		return model.Result{}, &ValidationError{Errors: errs}
	}
	if err := c.form.ResolveMedia(ctx, c.opts.Assets); err != nil {
		log.WithError(err).Error("resolve media")
		return model.Result{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	entity, err := c.form.Build(c.editing)
	if err != nil {
		log.WithError(err).Error("build entity")
		return model.Result{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	var res model.Result
	if c.editing == "" {
		res, err = c.write.Create(ctx, entity)
	} else {
		res, err = c.write.Update(ctx, c.editing, entity)
	}
	if err == nil && !res.Success {
		err = fmt.Errorf("write rejected: %s", res.Message)
	}
	if err != nil {
		log.WithError(err).Error("save")
		return res, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	log.WithField("result", res.Message).Info("saved")
	c.Reset()
	if c.opts.Reloader != nil {
		if err := c.opts.Reloader.Reload(ctx); err != nil {
			log.WithError(err).Warn("reload after save")
		}
	}
	return res, nil
}

func (c *Controller[E]) Reset() {
	c.form.Reset()
	c.editing = ""
	c.tab = c.form.Tabs()[0]
}
