// Package pricing derives net, VAT and gross subtotals from an assembled order.
package pricing

import (
	"github.com/nikolayk812/bnpl-checkout/internal/domain"
)

type OrderAmount struct {
	ItemsNetSubtotal    domain.Amount
	ItemsVatSubtotal    domain.Amount
	ItemsSubtotal       domain.Amount
	ShippingNetSubtotal domain.Amount
	ShippingVatSubtotal domain.Amount
	ShippingSubtotal    domain.Amount
	OrderNetSubtotal    domain.Amount
	OrderVatSubtotal    domain.Amount
	OrderTotal          domain.Amount
}

// ItemNet is the line total before VAT.
func ItemNet(item domain.OrderItem) domain.Amount {
	return item.NetUnitPriceInEur.MulInt(int64(item.Quantity))
}

// UnitGross is the unit price including VAT.
func UnitGross(item domain.OrderItem) domain.Amount {
	return item.NetUnitPriceInEur.Add(domain.VatAmount(item.NetUnitPriceInEur, item.Vat))
}

// ComputeOrderAmount sums items left to right in list order. Nothing is rounded.
func ComputeOrderAmount(order domain.Order) OrderAmount {
	var itemsNet, itemsVat domain.Amount
	for _, item := range order.Items {
		net := ItemNet(item)
		itemsNet = itemsNet.Add(net)
		itemsVat = itemsVat.Add(domain.VatAmount(net, item.Vat))
	}

	shippingNet := order.Shipping.NetPriceInEur
	shippingVat := domain.VatAmount(shippingNet, order.Shipping.Vat)

	orderNet := itemsNet.Add(shippingNet)
	orderVat := itemsVat.Add(shippingVat)

	return OrderAmount{
		ItemsNetSubtotal:    itemsNet,
		ItemsVatSubtotal:    itemsVat,
		ItemsSubtotal:       itemsNet.Add(itemsVat),
		ShippingNetSubtotal: shippingNet,
		ShippingVatSubtotal: shippingVat,
		ShippingSubtotal:    shippingNet.Add(shippingVat),
		OrderNetSubtotal:    orderNet,
		OrderVatSubtotal:    orderVat,
		OrderTotal:          orderNet.Add(orderVat),
	}
}
