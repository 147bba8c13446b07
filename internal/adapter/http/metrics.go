package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	itemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_items_added_total",
		Help: "Line items added to carts",
	})

	ordersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_submitted_total",
		Help: "Checkout submissions accepted by the order service",
	})

	submitFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_order_submit_failures_total",
		Help: "Checkout submissions rejected by the order service",
	})
)
