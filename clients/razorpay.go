package clients

import (
	"github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// PaymentGateway abstracts the Razorpay operations the desk uses, so the
// payment-order controller can be tested against a fake.
type PaymentGateway interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
	VerifyWebhookSignature(body, signature, webhookSecret string) bool
}

// RazorpayGateway implements PaymentGateway over the Razorpay SDK.
type RazorpayGateway struct {
	Client *razorpay.Client
}

// NewRazorpayGateway initializes the SDK client with the key pair.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		Client: razorpay.NewClient(keyID, keySecret),
	}
}

// CreateOrder creates a collect order (amount in paise, currency, receipt
// tag) and returns the gateway's order payload.
func (g *RazorpayGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return g.Client.Order.Create(data, nil)
}

// VerifyWebhookSignature checks a webhook payload against its signature.
func (g *RazorpayGateway) VerifyWebhookSignature(body, signature, webhookSecret string) bool {
	return utils.VerifyWebhookSignature(body, signature, webhookSecret)
}
