package rules

import "errors"

type Product struct {
	ID           int
	Name         string
	Price        int64
	DailyRevenue int64
	DurationDays int
}

// TotalRevenue is the full payout of the product bought quantity times.
func (p Product) TotalRevenue(quantity int) int64 {
	return p.DailyRevenue * int64(quantity) * int64(p.DurationDays)
}

const MaxQuantity = 10

var (
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Products is ordered by tier, lv1 first.
var Products = []Product{
	{ID: 1, Name: "lv1", Price: 5_000, DailyRevenue: 450, DurationDays: 60},
	{ID: 2, Name: "lv2", Price: 10_000, DailyRevenue: 950, DurationDays: 60},
	{ID: 3, Name: "lv3", Price: 25_000, DailyRevenue: 2_500, DurationDays: 60},
	{ID: 4, Name: "lv4", Price: 50_000, DailyRevenue: 5_250, DurationDays: 60},
	{ID: 5, Name: "lv5", Price: 100_000, DailyRevenue: 11_000, DurationDays: 60},
	{ID: 6, Name: "lv6", Price: 250_000, DailyRevenue: 28_500, DurationDays: 60},
	{ID: 7, Name: "lv7", Price: 500_000, DailyRevenue: 60_000, DurationDays: 60},
}

func ProductByID(id int) (Product, error) {
	for _, p := range Products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrUnknownProduct
}

// Quote returns the product and the price of buying it quantity times.
func Quote(productID, quantity int) (Product, int64, error) {
	product, err := ProductByID(productID)
	if err != nil {
		return Product{}, 0, err
	}
	if quantity < 1 || quantity > MaxQuantity {
		return Product{}, 0, ErrInvalidQuantity
	}
	return product, product.Price * int64(quantity), nil
}
