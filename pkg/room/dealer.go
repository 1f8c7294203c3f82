package room

import (
	"encoding/json"
	"sync"

	"bombpotpoker-server/pkg/table"
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
)

// Dealer is responsible for running the table. Every mutation of the table
// state, whether from a client command, a disconnect, or a timer tick, is
// executed inside the dealer's run loop so the table only ever sees one
// writer.
type Dealer struct {
	logger  logrus.FieldLogger
	clock   quartz.Clock
	table   *table.Table
	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer for the table
func NewDealer(logger logrus.FieldLogger, clock quartz.Clock, tbl *table.Table) *Dealer {
	return &Dealer{
		logger:        logger,
		clock:         clock,
		table:         tbl,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")

	ticker := d.clock.NewTicker(d.table.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			updated, err := d.table.Tick()
			if err != nil {
				d.logger.WithError(err).Error("tick failed")
				continue
			}

			if updated {
				d.broadcast()
			}
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client and sends it the current table snapshot.
// This method must return quickly.
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		client.Send(d.snapshot())
	}
}

// RemoveClient removes a client, vacating its seat if it held one.
// This method must return quickly.
func (d *Dealer) RemoveClient(client *Client) {
	d.lock.Lock()
	delete(d.clients, client)
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		if d.table.Leave(client.PlayerID) {
			d.broadcast()
		}
	}
}

// ReceivedMessage is called when a client sends a message to the server.
// Invalid commands are dropped without a reply or a broadcast.
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	d.execInRunLoop <- func() {
		var mutated bool

		switch msg.Action {
		case ActionSit:
			mutated = d.table.Sit(msg.SeatIndex, msg.BuyIn, msg.Nickname, c.PlayerID)
		case ActionAct:
			mutated = d.table.Act(c.PlayerID, table.Action{Kind: msg.Kind, Amount: msg.Amount})
		case ActionUpdateSettings:
			if msg.Settings != nil {
				mutated = d.table.UpdateSettings(*msg.Settings)
			}
		case ActionForceBombPot:
			mutated = d.table.ForceBombPot()
		default:
			d.logger.WithField("action", msg.Action).Warn("unknown message")
		}

		if mutated {
			d.broadcast()
		}
	}
}

// snapshot marshals the table inside the run loop so writers never observe
// a mid-mutation state.
// NOTE: must only be called from the run loop.
func (d *Dealer) snapshot() json.RawMessage {
	b, err := json.Marshal(newGameUpdate(d.table))
	if err != nil {
		d.logger.WithError(err).Error("could not marshal table snapshot")
		return nil
	}

	return json.RawMessage(b)
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast() {
	snapshot := d.snapshot()
	if snapshot == nil {
		return
	}

	for _, client := range d.Clients() {
		if !client.Send(snapshot) {
			d.logger.WithField("client", client.String()).Warn("client send buffer full, dropping frame")
		}
	}
}
