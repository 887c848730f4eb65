package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/sirupsen/logrus"
)

// Action identifies a user interaction on the catalog page.
type Action string

const (
	ActionInit    Action = ""
	ActionSearch  Action = "search"
	ActionShowAll Action = "showall"
	ActionPage    Action = "page"
)

var ErrUnknownAction = errors.New("unknown action")

// Event is one interaction delivered by the display surface.
type Event struct {
	Action    Action
	PageIndex int
}

// Controller reloads the product listing for every interaction and binds
// the result to a View.
type Controller struct {
	gateway repo.ProductGateway
	log     logrus.FieldLogger
}

func NewController(gateway repo.ProductGateway, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{gateway: gateway, log: log}
}

// Dispatch routes ev to the matching operation.
func (c *Controller) Dispatch(ctx context.Context, v *View, ev Event) error {
	switch ev.Action {
	case ActionInit:
		c.Init(ctx, v)
	case ActionSearch:
		c.Search(ctx, v)
	case ActionShowAll:
		c.ShowAll(ctx, v)
	case ActionPage:
		c.ChangePage(ctx, v, ev.PageIndex)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
	return nil
}

// Init performs the first render: the unfiltered listing on page 0.
func (c *Controller) Init(ctx context.Context, v *View) {
	v.SearchText = ""
	v.PageIndex = 0
	c.load(ctx, v, "")
}

// Search reloads with the trimmed search box text and returns to the
// first page.
func (c *Controller) Search(ctx context.Context, v *View) {
	v.PageIndex = 0
	c.load(ctx, v, strings.TrimSpace(v.SearchText))
}

// ShowAll clears the search box and reloads the unfiltered listing.
func (c *Controller) ShowAll(ctx context.Context, v *View) {
	v.SearchText = ""
	v.PageIndex = 0
	c.load(ctx, v, "")
}

// ChangePage moves the grid to newIndex, keeping the current search.
func (c *Controller) ChangePage(ctx context.Context, v *View, newIndex int) {
	v.PageIndex = newIndex
	c.load(ctx, v, strings.TrimSpace(v.SearchText))
}

func (c *Controller) load(ctx context.Context, v *View, term string) {
	rs, err := c.gateway.GetProducts(ctx, term)
	if err != nil {
		// The grid keeps whatever it showed before.
		v.Err = err
		v.Status = fmt.Sprintf("Error loading products: %s", err.Error())
		c.log.WithError(err).WithField("search", term).Warn("could not load products")
		return
	}

	v.Rows = rs.Rows
	v.Err = nil
	v.Loaded = true
	v.PageIndex = v.pager().Clamp(rs.Count(), v.PageIndex)
	v.Status = fmt.Sprintf("Total Records: %d", rs.Count())
}
