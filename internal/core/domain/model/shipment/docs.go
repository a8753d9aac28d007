// Package shipment contains the Shipment aggregate and its lifecycle state
// machine.
//
// A shipment moves draft -> bidding -> accepted -> paid -> in_transit ->
// delivered, with cancellation possible only before a bid is accepted. The
// aggregate enforces the accepted-bid invariant (accepted_bid_id set exactly
// in post-acceptance states) and freezes customer edits once the shipment is
// published. Bids themselves live in the bid package; the shipment only
// holds the reference to the winning one.
package shipment
