package scalapay

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	AuthToken                  string
	BaseURL                    string
	ClientTimeout              time.Duration
	OrderExpiration            time.Duration
	MerchantRedirectSuccessURL string
	MerchantRedirectCancelURL  string
}

func (c Config) Validate() error {
	var errs []error

	if c.AuthToken == "" {
		errs = append(errs, errors.New("auth token is empty"))
	}
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("base url[%s] is not valid: %w", c.BaseURL, err))
	}
	if c.ClientTimeout <= 0 {
		errs = append(errs, errors.New("client timeout must be positive"))
	}
	if c.OrderExpiration <= 0 {
		errs = append(errs, errors.New("order expiration must be positive"))
	}
	if c.MerchantRedirectSuccessURL == "" {
		errs = append(errs, errors.New("merchant redirect success url is empty"))
	}
	if c.MerchantRedirectCancelURL == "" {
		errs = append(errs, errors.New("merchant redirect cancel url is empty"))
	}

	return errors.Join(errs...)
}
