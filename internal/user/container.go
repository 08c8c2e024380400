package user

import (
	"context"
	"fmt"
	"time"

	sqluser "github.com/parkplatztransform/parkapi/data/sql/user"
	internalauth "github.com/parkplatztransform/parkapi/internal/pkg/auth"
	internalcmd "github.com/parkplatztransform/parkapi/internal/pkg/cmd"
	"github.com/parkplatztransform/parkapi/internal/user/app/email"
	"github.com/parkplatztransform/parkapi/internal/user/app/onetimeauth"
	"github.com/parkplatztransform/parkapi/internal/user/app/service"
	"github.com/parkplatztransform/parkapi/internal/user/app/session"
	usertask "github.com/parkplatztransform/parkapi/internal/user/app/task"
	"github.com/parkplatztransform/parkapi/internal/user/domain"
	userinfraauth "github.com/parkplatztransform/parkapi/internal/user/infra/auth"
	userinfraemail "github.com/parkplatztransform/parkapi/internal/user/infra/email"
	"github.com/parkplatztransform/parkapi/internal/user/infra/http"
	userinfraredis "github.com/parkplatztransform/parkapi/internal/user/infra/redis"
	userinfrasql "github.com/parkplatztransform/parkapi/internal/user/infra/sql"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
	"github.com/parkplatztransform/parkapi/pkg/env"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
	"github.com/parkplatztransform/parkapi/pkg/lazy"
	"github.com/parkplatztransform/parkapi/pkg/log"
	pkgmessage "github.com/parkplatztransform/parkapi/pkg/message"
	"github.com/parkplatztransform/parkapi/pkg/persistence"
	"github.com/parkplatztransform/parkapi/pkg/redis"
	"github.com/parkplatztransform/parkapi/pkg/sql"
	"github.com/parkplatztransform/parkapi/pkg/task"
	"github.com/parkplatztransform/parkapi/pkg/worker"
)

const (
	defaultTokenTTL      = 14 * 24 * time.Hour
	defaultTokenIssueTTL = 2 * time.Hour
	defaultSessionExpiry = 24 * time.Hour
)

type DependencyContainer struct {
	UserService  lazy.Loader[service.User]
	AuthProvider lazy.Loader[pkgauth.Provider[internalauth.Principal]]

	sendMagicLinkHandler   lazy.Loader[http.SendMagicLinkHandler]
	verifyMagicLinkHandler lazy.Loader[http.VerifyMagicLinkHandler]
	getCurrentUserHandler  lazy.Loader[http.GetCurrentUserHandler]
	logoutUserHandler      lazy.Loader[http.LogoutUserHandler]

	verificationSender lazy.Loader[email.VerificationSender]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[internalcmd.SQLMigrations],
	redisClient lazy.Loader[redis.Client],
	messageBroker lazy.Loader[pkgmessage.Broker],
	httpClientFactory lazy.Loader[pkghttp.ClientFactory],
) DependencyContainer {
	transaction := transactionProvider(db)
	userRepo := userRepositoryProvider(db, dbMigrations)
	sessionStore := sessionStoreProvider(redisClient)
	oneTimeAuth := oneTimeAuthProvider(redisClient)
	scheduler := taskSchedulerProvider(messageBroker)
	sessionCookie := sessionCookieConfigProvider()

	userService := userServiceProvider(oneTimeAuth, sessionStore, userRepo, scheduler, transaction)

	return DependencyContainer{
		UserService: userService,
		AuthProvider: lazy.New(func() (pkgauth.Provider[internalauth.Principal], error) {
			return userinfraauth.NewSessionProvider(sessionStore.MustLoad()), nil
		}),
		sendMagicLinkHandler: lazy.New(func() (http.SendMagicLinkHandler, error) {
			return http.NewSendMagicLinkHandler(userService.MustLoad()), nil
		}),
		verifyMagicLinkHandler: lazy.New(func() (http.VerifyMagicLinkHandler, error) {
			frontendURL := env.Must(env.Parse[string]("FRONTEND_URL"))
			return http.NewVerifyMagicLinkHandler(userService.MustLoad(), sessionCookie.MustLoad(), frontendURL), nil
		}),
		getCurrentUserHandler: lazy.New(func() (http.GetCurrentUserHandler, error) {
			return http.NewGetCurrentUserHandler(userService.MustLoad()), nil
		}),
		logoutUserHandler: lazy.New(func() (http.LogoutUserHandler, error) {
			return http.NewLogoutUserHandler(userService.MustLoad(), sessionCookie.MustLoad()), nil
		}),
		verificationSender: verificationSenderProvider(httpClientFactory),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.sendMagicLinkHandler.MustLoad())
	registry.Register(c.verifyMagicLinkHandler.MustLoad())
	registry.Register(c.getCurrentUserHandler.MustLoad(), pkghttp.WithAuthenticationRequirement())
	registry.Register(c.logoutUserHandler.MustLoad())
}

func (c *DependencyContainer) MustInitTaskConsumers(
	broker pkgmessage.Broker,
	logger log.Logger,
) []worker.ErrorJob {
	deserializer := pkgmessage.NewDeserializer()
	sender := c.verificationSender.MustLoad()

	sendVerificationEmailSpec, err := pkgmessage.RegisterTaskHandler(
		domain.Name,
		func(ctx context.Context, t usertask.SendVerificationEmail) error {
			return sender.SendVerificationLink(ctx, t.Email, t.Token)
		},
		deserializer,
	)
	if err != nil {
		panic(fmt.Errorf("register %s task handlers: %w", domain.Name, err))
	}

	subscriber := pkgmessage.NewSubscriberServiceName(internalcmd.ServiceName)
	listeners := make([]worker.ErrorJob, 0, 1)
	for _, spec := range []pkgmessage.TaskConsumerSpec{sendVerificationEmailSpec} {
		consumer, err := broker.Consumer(spec.Topic, subscriber, spec.ConsumptionType)
		if err != nil {
			panic(fmt.Errorf("create %s task consumer: %w", spec.Topic, err))
		}

		listeners = append(listeners, pkgmessage.NewListener(consumer, spec.Handler, logger))
	}

	return listeners
}

func transactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return sql.NewTransaction(db.MustLoad(), domain.Name, nil), nil
	})
}

func userRepositoryProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[internalcmd.SQLMigrations],
) lazy.Loader[domain.UserRepository] {
	return lazy.New(func() (domain.UserRepository, error) {
		dbMigrations.MustLoad().MustRegister(sqluser.Migrations)
		return userinfrasql.NewUserRepository(sql.NewTransactionalClient(db.MustLoad())), nil
	})
}

func sessionStoreProvider(redisClient lazy.Loader[redis.Client]) lazy.Loader[session.Store] {
	return lazy.New(func() (session.Store, error) {
		sessionExpiry := defaultSessionExpiry
		if v := env.Must(env.ParseOptional[time.Duration]("SESSION_EXPIRY")); v != nil {
			sessionExpiry = *v
		}

		return userinfraredis.NewSessionStore(redisClient.MustLoad(), sessionExpiry), nil
	})
}

func oneTimeAuthProvider(redisClient lazy.Loader[redis.Client]) lazy.Loader[onetimeauth.Service] {
	return lazy.New(func() (onetimeauth.Service, error) {
		config := onetimeauth.Config{
			SecretKey:     []byte(env.Must(env.Parse[string]("SECRET_KEY"))),
			BaseURL:       env.Must(env.Parse[string]("BASE_URL")),
			TokenTTL:      defaultTokenTTL,
			TokenIssueTTL: defaultTokenIssueTTL,
		}
		if v := env.Must(env.ParseOptional[time.Duration]("TOKEN_TTL")); v != nil {
			config.TokenTTL = *v
		}
		if v := env.Must(env.ParseOptional[time.Duration]("TOKEN_ISSUE_TTL")); v != nil {
			config.TokenIssueTTL = *v
		}

		return onetimeauth.New(config, userinfraredis.NewNonceStorage(redisClient.MustLoad())), nil
	})
}

func taskSchedulerProvider(messageBroker lazy.Loader[pkgmessage.Broker]) lazy.Loader[task.Scheduler] {
	return lazy.New(func() (task.Scheduler, error) {
		return pkgmessage.NewTaskScheduler(domain.Name, messageBroker.MustLoad()), nil
	})
}

func sessionCookieConfigProvider() lazy.Loader[http.SessionCookieConfig] {
	return lazy.New(func() (http.SessionCookieConfig, error) {
		config := http.SessionCookieConfig{
			Secure: true,
			TTL:    defaultSessionExpiry,
		}
		if v := env.Must(env.ParseOptional[string]("SESSION_COOKIE_DOMAIN")); v != nil {
			config.Domain = *v
		}
		if v := env.Must(env.ParseOptional[bool]("SESSION_COOKIE_SECURE")); v != nil {
			config.Secure = *v
		}
		if v := env.Must(env.ParseOptional[time.Duration]("SESSION_EXPIRY")); v != nil {
			config.TTL = *v
		}

		return config, nil
	})
}

func userServiceProvider(
	oneTimeAuth lazy.Loader[onetimeauth.Service],
	sessionStore lazy.Loader[session.Store],
	userRepo lazy.Loader[domain.UserRepository],
	scheduler lazy.Loader[task.Scheduler],
	transaction lazy.Loader[persistence.Transaction],
) lazy.Loader[service.User] {
	return lazy.New(func() (service.User, error) {
		return service.NewUser(
			oneTimeAuth.MustLoad(),
			sessionStore.MustLoad(),
			userRepo.MustLoad(),
			scheduler.MustLoad(),
			transaction.MustLoad(),
		), nil
	})
}

func verificationSenderProvider(httpClientFactory lazy.Loader[pkghttp.ClientFactory]) lazy.Loader[email.VerificationSender] {
	return lazy.New(func() (email.VerificationSender, error) {
		config := userinfraemail.Config{
			APIKey:    env.Must(env.Parse[string]("MAILGUN_API_KEY")),
			Domain:    env.Must(env.Parse[string]("MAILGUN_DOMAIN")),
			Sender:    env.Must(env.Parse[string]("MAILGUN_SENDER")),
			VerifyURL: fmt.Sprintf("%s/users/verify/", env.Must(env.Parse[string]("BASE_URL"))),
		}
		factory := httpClientFactory.MustLoad()
		return userinfraemail.NewMailgunSender(config, factory), nil
	})
}
