package handler

import (
	"campussell/internal/usecase"
)

var (
	authHandler     *AuthHandler
	productHandler  *ProductHandler
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
	orderHandler    *OrderHandler
	deliveryHandler *DeliveryHandler
	inquiryHandler  *InquiryHandler
	adminHandler    *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	productUseCase *usecase.ProductUseCase,
	cartUseCase *usecase.CartUseCase,
	checkoutUseCase *usecase.CheckoutUseCase,
	orderUseCase *usecase.OrderUseCase,
	deliveryUseCase *usecase.DeliveryUseCase,
	inquiryUseCase *usecase.InquiryUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase, cartUseCase)
	productHandler = NewProductHandler(productUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	checkoutHandler = NewCheckoutHandler(checkoutUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	deliveryHandler = NewDeliveryHandler(deliveryUseCase)
	inquiryHandler = NewInquiryHandler(inquiryUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetDeliveryHandler() *DeliveryHandler {
	return deliveryHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
