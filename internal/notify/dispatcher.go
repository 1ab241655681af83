// Package notify fans out best-effort order notifications to the seller and
// the buyer. Delivery failures are logged and counted, never surfaced.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/inkwell-books/orders-service/internal/clients"
	"github.com/inkwell-books/orders-service/internal/metrics"
	"github.com/inkwell-books/orders-service/internal/models"
)

const closeTimeout = 10 * time.Second

type jobKind int

const (
	jobSeller jobKind = iota
	jobBuyer
)

type job struct {
	kind  jobKind
	order models.Order
}

// Dispatcher queues notification jobs onto a buffered channel consumed by a
// single worker goroutine, so the request path never waits on a provider
// call. Enqueueing never blocks: when the queue is full the job is dropped
// and counted as a failure.
type Dispatcher struct {
	email       clients.EmailSender
	messaging   clients.MessageSender
	sellerEmail string
	sellerPhone string
	jobs        chan job
	done        chan struct{}
	closeOnce   sync.Once
	logger      *slog.Logger
}

// NewDispatcher creates a dispatcher and starts its worker.
func NewDispatcher(
	email clients.EmailSender,
	messaging clients.MessageSender,
	sellerEmail string,
	sellerPhone string,
	queueSize int,
	logger *slog.Logger,
) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}

	d := &Dispatcher{
		email:       email,
		messaging:   messaging,
		sellerEmail: sellerEmail,
		sellerPhone: sellerPhone,
		jobs:        make(chan job, queueSize),
		done:        make(chan struct{}),
		logger:      logger,
	}

	go d.run()
	return d
}

// NotifySeller queues the new-order notice for the seller.
func (d *Dispatcher) NotifySeller(order models.Order) {
	d.enqueue(job{kind: jobSeller, order: order})
}

// NotifyBuyer queues the confirmation for the buyer. Callers only invoke this
// when the order carries an email address.
func (d *Dispatcher) NotifyBuyer(order models.Order) {
	d.enqueue(job{kind: jobBuyer, order: order})
}

// Close stops accepting jobs and waits for the worker to drain the queue,
// bounded by a timeout. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
	})
	select {
	case <-d.done:
	case <-time.After(closeTimeout):
		d.logger.Warn("dispatcher close timed out with jobs pending")
	}
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case d.jobs <- j:
	default:
		channel := channelName(j.kind)
		metrics.NotificationFailures.WithLabelValues(channel).Inc()
		d.logger.Warn("notification queue full, dropping job",
			"channel", channel,
			"order_id", j.order.ID,
		)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for j := range d.jobs {
		switch j.kind {
		case jobSeller:
			d.deliverSeller(j.order)
		case jobBuyer:
			d.deliverBuyer(j.order)
		}
	}
}

func (d *Dispatcher) deliverSeller(order models.Order) {
	ctx := context.Background()

	msg := &clients.EmailMessage{
		To:      d.sellerEmail,
		Subject: fmt.Sprintf("New Order - %s", order.Book),
		HTML: fmt.Sprintf(
			"<h2>New Order Received</h2>"+
				"<p>ID: %d</p>"+
				"<p>Name: %s</p>"+
				"<p>Phone: %s</p>"+
				"<p>Payment: %s</p>"+
				"<p>Amount: ₹%.0f</p>",
			order.ID, order.Name, order.Phone, order.Payment, order.Price,
		),
	}

	if err := d.email.SendEmail(ctx, msg); err != nil {
		metrics.NotificationFailures.WithLabelValues("seller_email").Inc()
		d.logger.Error("seller email failed", "order_id", order.ID, "error", err)
	} else {
		metrics.NotificationsSent.WithLabelValues("seller_email").Inc()
	}

	if d.messaging == nil || d.sellerPhone == "" {
		return
	}

	body := fmt.Sprintf("New order #%d: %s ordered %q (%s, ₹%.0f). Phone: %s",
		order.ID, order.Name, order.Book, order.Payment, order.Price, order.Phone)

	if err := d.messaging.SendMessage(ctx, d.sellerPhone, body); err != nil {
		metrics.NotificationFailures.WithLabelValues("seller_message").Inc()
		d.logger.Error("seller message failed", "order_id", order.ID, "error", err)
	} else {
		metrics.NotificationsSent.WithLabelValues("seller_message").Inc()
	}
}

func (d *Dispatcher) deliverBuyer(order models.Order) {
	if order.Email == "" {
		return
	}

	msg := &clients.EmailMessage{
		To:      order.Email,
		Subject: fmt.Sprintf("Order Confirmation - %s", order.Book),
		HTML: fmt.Sprintf(
			"<h2>Thank you %s</h2>"+
				"<p>Order ID: %d</p>"+
				"<p>Book: %s</p>"+
				"<p>Amount: ₹%.0f</p>",
			order.Name, order.ID, order.Book, order.Price,
		),
	}

	if err := d.email.SendEmail(context.Background(), msg); err != nil {
		metrics.NotificationFailures.WithLabelValues("buyer_email").Inc()
		d.logger.Error("buyer email failed", "order_id", order.ID, "error", err)
	} else {
		metrics.NotificationsSent.WithLabelValues("buyer_email").Inc()
	}
}

func channelName(k jobKind) string {
	if k == jobSeller {
		return "seller_email"
	}
	return "buyer_email"
}
