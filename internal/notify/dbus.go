package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	dbusDestination = "org.freedesktop.Notifications"
	dbusPath        = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusMethod      = dbusDestination + ".Notify"
)

// DBus sends desktop notifications over the session bus.
type DBus struct {
	AppName string
	Expire  time.Duration

	// connect is replaced in tests.
	connect func(opts ...dbus.ConnOption) (*dbus.Conn, error)
}

func NewDBus(appName string, expire time.Duration) *DBus {
	return &DBus{AppName: appName, Expire: expire, connect: dbus.ConnectSessionBus}
}

func (d *DBus) Notify(ctx context.Context, title, body string) error {
	connect := d.connect
	if connect == nil {
		connect = dbus.ConnectSessionBus
	}
	conn, err := connect()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(dbusDestination, dbusPath)
	call := obj.CallWithContext(ctx, dbusMethod, 0,
		d.AppName,
		uint32(0),
		"",
		title,
		body,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(byte(1))},
		int32(d.Expire/time.Millisecond),
	)
	if call.Err != nil {
		return fmt.Errorf("send desktop notification: %w", call.Err)
	}
	return nil
}
