package inventory

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/kritsada-dev/tickethub/internal/domain"
)

// soldOutMarker is the exact legacy status literal that forces a tier to be
// unavailable regardless of its remaining count. The comparison is
// case-sensitive; "Sold Out" or "SOLD OUT" do not match.
const soldOutMarker = "sold out"

// Config holds the pricing and scarcity knobs for inventory analysis.
// Zero values fall back to the platform defaults.
type Config struct {
	// ServiceFeePercent is the platform surcharge as a percentage of face
	// value (2.5 means 2.5%).
	ServiceFeePercent float64
	// LowStockThreshold is the remaining-unit count at or below which an
	// event with inventory is flagged as low stock.
	LowStockThreshold int
	// Locale is a BCP 47 tag used for price display formatting.
	Locale string
	// Currency is the ISO 4217 code used for price display formatting.
	Currency string
}

// DefaultConfig returns the platform default analysis configuration.
func DefaultConfig() Config {
	return Config{
		ServiceFeePercent: 2.5,
		LowStockThreshold: 10,
		Locale:            "en-US",
		Currency:          "USD",
	}
}

// EnrichedTier is the per-tier output view: the source tier plus derived
// pricing and availability fields.
type EnrichedTier struct {
	domain.TicketTier

	// RawPrice is the sanitized numeric face value.
	RawPrice float64 `json:"raw_price"`
	// ServiceFee is the platform surcharge, rounded to cents.
	ServiceFee float64 `json:"service_fee"`
	// TotalPrice is face value plus service fee, rounded to cents.
	TotalPrice float64 `json:"total_price"`
	// FormattedPrice is the face value rendered in the configured
	// locale/currency.
	FormattedPrice string `json:"formatted_price"`
	// IsAvailable reports whether the tier can currently be purchased.
	IsAvailable bool `json:"is_available"`
	// MaxStock is the resolved remaining unit count.
	MaxStock int `json:"max_stock"`
}

// Summary is the aggregated inventory view for one event.
type Summary struct {
	// MinPrice and MaxPrice bound the face values of available tiers
	// only. Both are 0 when no tier is available.
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	// TotalStock is the sum of every tier's resolved count, including
	// unavailable and sold-out tiers.
	TotalStock   int  `json:"total_stock"`
	HasInventory bool `json:"has_inventory"`
	IsLowStock   bool `json:"is_low_stock"`
	// Tiers preserves the input cardinality and order.
	Tiers []EnrichedTier `json:"tiers"`
	// PriceDisplay is a single formatted price when min == max, otherwise
	// "From {min}".
	PriceDisplay string `json:"price_display"`
}

// Analyzer computes inventory summaries. It is stateless and safe for
// concurrent use.
type Analyzer struct {
	cfg     Config
	printer *message.Printer
	unit    currency.Unit
}

// NewAnalyzer creates an Analyzer with the given configuration. Zero-valued
// fields take platform defaults; an unknown locale or currency falls back to
// en-US / USD rather than failing.
func NewAnalyzer(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.ServiceFeePercent <= 0 {
		cfg.ServiceFeePercent = def.ServiceFeePercent
	}
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = def.LowStockThreshold
	}
	if cfg.Locale == "" {
		cfg.Locale = def.Locale
	}
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		unit = currency.USD
	}

	return &Analyzer{
		cfg:     cfg,
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// Config returns the effective configuration after defaulting.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Analyze aggregates a list of ticket tiers into a Summary. A nil or empty
// list yields an empty summary and malformed values degrade to zero. The
// input slice is never mutated.
func (a *Analyzer) Analyze(tiers []domain.TicketTier) Summary {
	enriched := make([]EnrichedTier, 0, len(tiers))
	totalStock := 0

	// Infinity sentinels stay internal to this loop; they resolve to 0/0
	// when no tier is available.
	minPrice := math.Inf(1)
	maxPrice := math.Inf(-1)

	for _, tier := range tiers {
		price := sanitizePrice(tier.Price)
		stock := resolveStock(tier)
		fee := round2(price * a.cfg.ServiceFeePercent / 100)
		available := stock > 0 && tier.Status != soldOutMarker

		totalStock += stock
		if available {
			if price < minPrice {
				minPrice = price
			}
			if price > maxPrice {
				maxPrice = price
			}
		}

		enriched = append(enriched, EnrichedTier{
			TicketTier:     tier,
			RawPrice:       price,
			ServiceFee:     fee,
			TotalPrice:     round2(price + fee),
			FormattedPrice: a.FormatPrice(price),
			IsAvailable:    available,
			MaxStock:       stock,
		})
	}

	if math.IsInf(minPrice, 1) {
		minPrice = 0
		maxPrice = 0
	}

	hasInventory := totalStock > 0
	summary := Summary{
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		TotalStock:   totalStock,
		HasInventory: hasInventory,
		IsLowStock:   hasInventory && totalStock <= a.cfg.LowStockThreshold,
		Tiers:        enriched,
	}
	if minPrice == maxPrice {
		summary.PriceDisplay = a.FormatPrice(minPrice)
	} else {
		summary.PriceDisplay = "From " + a.FormatPrice(minPrice)
	}
	return summary
}

// FormatPrice renders a price in the configured locale and currency, e.g.
// "$1,250.00" for en-US/USD.
func (a *Analyzer) FormatPrice(v float64) string {
	return a.printer.Sprintf("%s%v", currencySymbol(a.unit),
		number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// sanitizePrice coerces a face value to a non-negative finite number.
func sanitizePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// resolveStock prefers the current count field, falls back to the legacy
// alias, and clamps negatives to zero.
func resolveStock(tier domain.TicketTier) int {
	var stock int
	switch {
	case tier.AvailableTickets != nil:
		stock = *tier.AvailableTickets
	case tier.TicketsAvailable != nil:
		stock = *tier.TicketsAvailable
	}
	if stock < 0 {
		return 0
	}
	return stock
}

// round2 rounds to two decimal places (cents).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// currencySymbol maps common units to their display symbol. Units without a
// well-known symbol fall back to "CODE " prefix form.
func currencySymbol(unit currency.Unit) string {
	switch unit {
	case currency.USD:
		return "$"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	case currency.JPY:
		return "¥"
	case currency.THB:
		return "฿"
	default:
		return unit.String() + " "
	}
}
