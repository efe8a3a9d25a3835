package statemachine

import (
	"fmt"

	"github.com/homechef/marketplace-api/models"
)

// Actor identifies who is attempting a status change.
type Actor string

const (
	ActorChef     Actor = "chef"
	ActorCustomer Actor = "customer"
)

// Transition defines a valid state change and who may perform it.
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor Actor
}

// validTransitions is the authoritative order workflow definition. The chef
// drives the order forward; the customer may only bail out early.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: ActorChef},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorChef},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorCustomer},
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: ActorChef},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorChef},
	{From: models.StatusConfirmed, To: models.StatusCancelled, Actor: ActorCustomer},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: ActorChef},
	{From: models.StatusReady, To: models.StatusDelivered, Actor: ActorChef},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor Actor
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition reports whether the actor may move an order from one status
// to another. The chef may resubmit the current status as a no-op; the
// customer's only valid request is an early cancel.
func CanTransition(from, to models.OrderStatus, actor Actor) error {
	if from == to && actor == ActorChef {
		return nil
	}
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return fmt.Errorf("cannot change status from %s to %s", from, to)
}

// ValidNextStatuses returns every status reachable from the given one,
// regardless of actor.
func ValidNextStatuses(from models.OrderStatus) []models.OrderStatus {
	var next []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == from && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}
	return next
}
