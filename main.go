package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/net-studio/intranet-sub001/cms"
	"github.com/net-studio/intranet-sub001/config"
	"github.com/net-studio/intranet-sub001/models"
	"github.com/net-studio/intranet-sub001/notify"
	"github.com/net-studio/intranet-sub001/platform"
	"github.com/net-studio/intranet-sub001/scheduler"
	"github.com/net-studio/intranet-sub001/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	conf := config.New()
	ctx := context.Background()

	store, err := storage.NewRedisBindingStore(conf.RedisAddr)
	if err != nil {
		zap.S().Fatalw("failed to open identity binding store", "error", err)
	}

	client := cms.NewClient(conf)
	identity := notify.NewIdentity(store, cms.NewCollaboratorAPI(client))
	gateway := notify.NewGateway(identity, cms.NewNotificationAPI(client))
	registry := notify.NewTokenRegistry(identity, cms.NewTokenAPI(client))

	relay := platform.NewRelay()
	adapter := buildAdapter(ctx, conf, relay)

	counter := notify.NewCounter(gateway, adapter)
	sched := scheduler.New(counter, conf.RefreshInterval)
	gateway.OnMutate = sched.Kick

	router := notify.NewRouter(gateway, notify.NavigatorFunc(func(intent notify.Intent) {
		relay.Broadcast("navigate", intent)
	}))

	unsubscribe := adapter.Listen(
		func(n models.Notification) {
			zap.S().Infow("notification received", "id", n.ID, "kind", n.Data.Kind)
			sched.Kick()
		},
		func(n models.Notification) {
			router.HandleClick(ctx, n)
		},
	)
	defer unsubscribe()

	relay.SubscribeTokens(func(token string, kind models.DeviceKind) {
		registry.Register(ctx, token, kind)
	})

	sched.Start()
	defer sched.Stop()
	removeBadgeFeed := sched.Subscribe(func(snapshot models.UnreadSnapshot) {
		relay.Broadcast("unread_count", snapshot)
	})
	defer removeBadgeFeed()

	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheckHandler)
	relay.Routes(r)

	zap.S().Infow("intranet notification agent is up and running",
		"port", conf.Port,
		"cms", conf.CMSBaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", conf.Port), r))
}

// buildAdapter selects the platform variant. The daemon defaults to the web
// variant; the mobile variant is normally constructed by the embedding mobile
// shell, which supplies the OS registrar.
func buildAdapter(ctx context.Context, conf *config.Config, relay *platform.Relay) platform.Adapter {
	switch conf.Platform {
	case "ios", "android":
		return platform.NewMobile(nil, platform.NewExpoSender(), models.DeviceKind(conf.Platform))
	default:
		var sender platform.WebPushSender
		if conf.FirebaseCredentials != "" {
			client, err := platform.NewMessagingClient(ctx, conf.FirebaseCredentials)
			if err != nil {
				zap.S().Warnw("fcm unavailable, web display disabled", "error", err)
			} else {
				sender = client
			}
		}
		return platform.NewWeb(nil, sender, relay)
	}
}

func healthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"alive": true}`))
}
