package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"payment_gateway_client/internal/domain/entities"
)

const NamespaceNotification = "http://notification.services.adyen.com"

// DecodeNotifications reads a sendNotification document pushed by the
// gateway into one Notification per NotificationRequestItem.
func DecodeNotifications(doc []byte) ([]entities.Notification, error) {
	env, err := Decode(doc)
	if err != nil {
		return nil, withAction(err, "sendNotification")
	}
	if env.Fault != nil {
		return nil, &entities.ParseError{Action: "sendNotification", Err: fmt.Errorf("unexpected fault %s", env.Fault.Code)}
	}
	if env.Body.Name != "sendNotification" {
		return nil, &entities.ParseError{Action: "sendNotification", Err: fmt.Errorf("unexpected element %q", env.Body.Name)}
	}

	notification := env.Body.Child("notification")
	if !notification.Present() {
		return nil, &entities.ParseError{Action: "sendNotification", Err: fmt.Errorf("missing notification")}
	}
	live, err := optionalBool(notification, "live")
	if err != nil {
		return nil, &entities.ParseError{Action: "sendNotification", Err: err}
	}

	items := notification.Child("notificationItems")
	out := make([]entities.Notification, 0)
	if !items.Present() {
		return out, nil
	}
	for _, item := range items.Children {
		n, err := decodeNotificationItem(item)
		if err != nil {
			return nil, &entities.ParseError{Action: "sendNotification", Err: err}
		}
		n.Live = live
		out = append(out, n)
	}
	return out, nil
}

func decodeNotificationItem(item *Node) (entities.Notification, error) {
	var n entities.Notification

	var ok bool
	if n.EventCode, ok = item.Value("eventCode"); !ok {
		return n, fmt.Errorf("notification item without eventCode")
	}
	if n.PSPReference, ok = item.Value("pspReference"); !ok {
		return n, fmt.Errorf("notification item without pspReference")
	}
	n.OriginalReference, _ = item.Value("originalReference")
	n.MerchantReference, _ = item.Value("merchantReference")
	n.MerchantAccount, _ = item.Value("merchantAccountCode")
	n.Reason, _ = item.Value("reason")
	n.PaymentMethod, _ = item.Value("paymentMethod")

	success, err := optionalBool(item, "success")
	if err != nil {
		return n, err
	}
	n.Success = success

	if amount := item.Child("amount"); amount.Present() {
		a, err := ParseAmountNode(amount)
		if err != nil {
			return n, err
		}
		n.Amount = &a
	}

	if v, ok := item.Value("eventDate"); ok && v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return n, fmt.Errorf("invalid eventDate %q: %w", v, err)
		}
		n.EventDate = t
	}
	return n, nil
}

func optionalBool(n *Node, name string) (bool, error) {
	v, ok := n.Value(name)
	if !ok || v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %s=%q", name, v)
	}
	return b, nil
}

// EncodeNotificationAck answers a sendNotification call with the
// acceptance token.
func EncodeNotificationAck() []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	fmt.Fprintf(&buf, `<soap:Envelope xmlns:soap="%s">`, NamespaceEnvelope)
	fmt.Fprintf(&buf, `<soap:Body><ns1:sendNotificationResponse xmlns:ns1="%s">`, NamespaceNotification)
	fmt.Fprintf(&buf, `<ns1:notificationResponse>%s</ns1:notificationResponse>`, entities.NotificationAcceptedToken)
	buf.WriteString(`</ns1:sendNotificationResponse></soap:Body></soap:Envelope>`)
	return buf.Bytes()
}
