package formvalidator

// Text rendered in the form-level banner.
const (
	SuccessText       = "✓ Form submitted successfully!"
	ErrorSummaryTitle = "Please fix the following errors:"
)

// BannerID identifies one banner instance. IDs increase monotonically per
// validator, so an expiry task can tell whether its banner is still current.
type BannerID uint64

type BannerKind int

const (
	BannerSuccess BannerKind = iota
	BannerErrorSummary
)

func (k BannerKind) String() string {
	if k == BannerErrorSummary {
		return "error-summary"
	}
	return "success-message"
}

// Banner is the single form-level message.
type Banner struct {
	ID    BannerID
	Kind  BannerKind
	Title string
	// Items lists the labels of failing fields for an error summary.
	Items []string
}
