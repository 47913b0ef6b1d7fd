package database_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/database"
)

func TestNewDB_EmptyDSN(t *testing.T) {
	_, err := database.NewDB(context.Background(), "", zap.NewNop())
	assert.Error(t, err)
}

// Сервер принимает соединение и молчит: Ping должен вернуться по таймауту.
func TestPing_HangingServer(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = lis.Close() })

	go func() {
		var conns []net.Conn
		defer func() {
			for _, c := range conns {
				_ = c.Close()
			}
		}()
		for {
			conn, err := lis.Accept()
			if err != nil {
				return
			}
			conns = append(conns, conn)
		}
	}()

	dsn := fmt.Sprintf("postgres://u:p@%s/brain?sslmode=disable", lis.Addr().String())
	db, err := database.NewDB(context.Background(), dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(db.Close)

	start := time.Now()
	err = db.Ping(context.Background())

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
