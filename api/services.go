package api

// Services bundles every resource service over one base client, mirroring
// the remote API's service catalogue.
type Services struct {
	User     UserService
	Merchant MerchantService
	Product  ProductService
	Category CategoryService
	Discount DiscountService
	Tax      TaxService
	Shipping ShippingService
	Order    OrderService
	Customer CustomerService
}

// NewServices creates the full service catalogue for the given base URL.
func NewServices(baseURL string, options ...ClientOption) (*Services, error) {
	client, err := NewClient(baseURL, options...)
	if err != nil {
		return nil, err
	}
	return &Services{
		User:     NewUserService(client),
		Merchant: NewMerchantService(client),
		Product:  NewProductService(client),
		Category: NewCategoryService(client),
		Discount: NewDiscountService(client),
		Tax:      NewTaxService(client),
		Shipping: NewShippingService(client),
		Order:    NewOrderService(client),
		Customer: NewCustomerService(client),
	}, nil
}
