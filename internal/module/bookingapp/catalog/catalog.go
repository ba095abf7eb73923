package catalog

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/marhaba-park/mp-booking/pkg/errors"
	"github.com/marhaba-park/mp-booking/pkg/status"
)

// types also fixes the display order of the catalog.
var types = []Type{
	SingleDayPass,
	TwoDayPass,
	AnnualMembership,
	ChildTicket,
	GroupTicket,
	VIPExperiencePass,
}

var policies = map[Type]Policy{
	SingleDayPass: {
		Description:       "Access to the park for one day.",
		Limitations:       "Valid only on selected date.",
		Validity:          "1 day",
		DiscountAvailable: "None",
	},
	TwoDayPass: {
		Description:       "Access to the park for two consecutive days.",
		Limitations:       "Cannot be split over multiple trips.",
		Validity:          "2 days",
		DiscountAvailable: "10% discount for online purchase.",
	},
	AnnualMembership: {
		Description:       "Unlimited access for one year.",
		Limitations:       "Must be used by the same person",
		Validity:          "1 year",
		DiscountAvailable: "15% discount on renewal.",
	},
	ChildTicket: {
		Description:       "Discounted ticket for children age (3-12)",
		Limitations:       "Valid only on selected date must be accompanied by an adult.",
		Validity:          "1 day",
		DiscountAvailable: "None.",
	},
	GroupTicket: {
		Description:       "Special rate for groups of 10",
		Limitations:       "Must be booked in advance.",
		Validity:          "1 day",
		DiscountAvailable: "20% off for groups of 20 or more.",
	},
	VIPExperiencePass: {
		Description:       "Includes expedited access and reserved seating for shows",
		Limitations:       "Limited availability must be purchased in advance.",
		Validity:          "1 day",
		DiscountAvailable: "None.",
	},
}

var basePrices = map[Type]float64{
	SingleDayPass:     275,
	TwoDayPass:        480,
	AnnualMembership:  1840,
	ChildTicket:       185,
	GroupTicket:       220,
	VIPExperiencePass: 550,
}

// Types lists every catalog entry in display order.
func Types() []Type {
	out := make([]Type, len(types))
	copy(out, types)
	return out
}

func Valid(t Type) bool {
	_, ok := policies[t]
	return ok
}

func PolicyFor(t Type) (Policy, error) {
	p, ok := policies[t]
	if !ok {
		return Policy{}, errors.New(http.StatusUnprocessableEntity, status.UNPROCESSABLE_ENTITY, fmt.Sprintf("invalid ticket type: %s", t))
	}

	return p, nil
}

func BasePrice(t Type) (float64, error) {
	price, ok := basePrices[t]
	if !ok {
		return 0, errors.New(http.StatusUnprocessableEntity, status.UNPROCESSABLE_ENTITY, fmt.Sprintf("invalid ticket type: %s", t))
	}

	return price, nil
}

// PriceFor applies the pricing policy: group tickets are sold in lots of
// 10, every other type sells at its base price.
func PriceFor(t Type, basePrice float64) float64 {
	if t == GroupTicket {
		return basePrice * 10
	}

	return basePrice
}

// DisplayName renders a type tag for listings, e.g. GROUP_TICKET becomes
// "Group Ticket".
func DisplayName(t Type) string {
	words := strings.Split(strings.ToLower(string(t)), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

// ParseType resolves a display name or raw tag back to a catalog type.
func ParseType(s string) (Type, error) {
	tag := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
	t := Type(tag)
	if !Valid(t) {
		return "", errors.New(http.StatusUnprocessableEntity, status.UNPROCESSABLE_ENTITY, fmt.Sprintf("invalid ticket type: %s", s))
	}

	return t, nil
}
