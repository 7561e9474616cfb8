package codforge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// OrderSubmission is one completed checkout: the submitted form fields
// plus payment context collected by the server.
type OrderSubmission struct {
	Fields        map[FormFieldID]string
	PaymentMethod string // "cod" or "card"
	CustomerIP    string
	Selections    AddonSelections
}

// WebhookNotifier delivers order events to the page's configured
// webhook URL as a flat form-encoded POST. Delivery is fire-and-forget:
// failures are logged and never surfaced to the buyer.
type WebhookNotifier struct {
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

// WebhookOption is a functional option for configuring the notifier.
type WebhookOption func(*WebhookNotifier)

// WithWebhookClient overrides the HTTP client used for delivery.
func WithWebhookClient(client *http.Client) WebhookOption {
	return func(n *WebhookNotifier) {
		n.client = client
	}
}

// WithWebhookLogger sets the structured logger.
func WithWebhookLogger(logger *zap.Logger) WebhookOption {
	return func(n *WebhookNotifier) {
		n.logger = logger
	}
}

// WithWebhookClock overrides the timestamp source.
func WithWebhookClock(now func() time.Time) WebhookOption {
	return func(n *WebhookNotifier) {
		n.now = now
	}
}

// NewWebhookNotifier creates a notifier with a 10 second delivery
// timeout by default.
func NewWebhookNotifier(opts ...WebhookOption) *WebhookNotifier {
	n := &WebhookNotifier{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// OrderPayload flattens a submission into the outgoing key/value set.
func OrderPayload(doc *ContentDocument, sub OrderSubmission, now time.Time) url.Values {
	currency := doc.Currency
	product := doc.Headline
	if product == "" {
		product = "Unknown Product"
	}

	values := url.Values{}
	values.Set("event_type", "new_order")
	values.Set("product_name", product)
	values.Set("price", doc.Price+" "+currency)
	if doc.EnableShippingCost {
		values.Set("shipping_cost", doc.ShippingCost+" "+currency)
	} else {
		values.Set("shipping_cost", "0 "+currency)
	}
	values.Set("total_price", CalculateTotal(doc, sub.Selections)+" "+currency)
	values.Set("payment_method", sub.PaymentMethod)
	values.Set("customer_ip", sub.CustomerIP)
	values.Set("timestamp", now.UTC().Format(time.RFC3339))

	if sub.Selections.Insurance && doc.InsuranceConfig != nil && doc.InsuranceConfig.Enabled {
		values.Set("shipping_insurance_selected", "yes")
		values.Set("shipping_insurance_cost", doc.InsuranceConfig.Cost+" "+currency)
	} else {
		values.Set("shipping_insurance_selected", selectedWord(sub.Selections.Insurance))
		values.Set("shipping_insurance_cost", "0")
	}
	if sub.Selections.Gadget && doc.GadgetConfig != nil && doc.GadgetConfig.Enabled {
		values.Set("gadget_selected", "yes")
		values.Set("gadget_cost", doc.GadgetConfig.Cost+" "+currency)
	} else {
		values.Set("gadget_selected", selectedWord(sub.Selections.Gadget))
		values.Set("gadget_cost", "0")
	}

	for id, value := range sub.Fields {
		values.Set(string(id), value)
	}
	return values
}

func selectedWord(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// NotifyOrder posts the order event to the document's webhook URL in a
// background goroutine. Pages without a webhook URL are skipped.
func (n *WebhookNotifier) NotifyOrder(ctx context.Context, doc *ContentDocument, sub OrderSubmission) {
	target := strings.TrimSpace(doc.WebhookURL)
	if target == "" {
		return
	}
	payload := OrderPayload(doc, sub, n.now())

	// Delivery outlives the originating request; the client timeout
	// bounds it instead of the request context.
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := n.deliver(ctx, target, payload); err != nil {
			n.logger.Warn("webhook delivery failed",
				zap.String("url", target),
				zap.Error(err))
		}
	}()
}

func (n *WebhookNotifier) deliver(ctx context.Context, target string, payload url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(payload.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook endpoint returned %s", resp.Status)
	}
	return nil
}
