package pure

// Demo values returned by GetProduct for every id.
const (
	DemoProductPrice = 10
	DemoProductName  = "Joe Momma"
)

// Product is a catalog entry.
type Product struct {
	ID    int
	Price float64
	Name  string
}

// Currencies returns the supported currency codes. The order is not part of
// the contract and a new slice is returned on every call.
func Currencies() []string {
	return []string{"AUD", "EUR", "USD"}
}

// GetProduct returns the demo product carrying the given id.
func GetProduct(id int) Product {
	return Product{ID: id, Price: DemoProductPrice, Name: DemoProductName}
}
