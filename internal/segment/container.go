package segment

import (
	sqlsegment "github.com/parkplatztransform/parkapi/data/sql/segment"
	internalauth "github.com/parkplatztransform/parkapi/internal/pkg/auth"
	internalcmd "github.com/parkplatztransform/parkapi/internal/pkg/cmd"
	"github.com/parkplatztransform/parkapi/internal/segment/app/service"
	"github.com/parkplatztransform/parkapi/internal/segment/domain"
	"github.com/parkplatztransform/parkapi/internal/segment/infra/http"
	segmentinfrasql "github.com/parkplatztransform/parkapi/internal/segment/infra/sql"
	pkgauth "github.com/parkplatztransform/parkapi/pkg/auth"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
	"github.com/parkplatztransform/parkapi/pkg/lazy"
	"github.com/parkplatztransform/parkapi/pkg/persistence"
	"github.com/parkplatztransform/parkapi/pkg/sql"
)

type DependencyContainer struct {
	SegmentService lazy.Loader[service.Segment]

	getSegmentsHandler   lazy.Loader[http.GetSegmentsHandler]
	querySegmentsHandler lazy.Loader[http.QuerySegmentsHandler]
	getSegmentHandler    lazy.Loader[http.GetSegmentHandler]
	createSegmentHandler lazy.Loader[http.CreateSegmentHandler]
	updateSegmentHandler lazy.Loader[http.UpdateSegmentHandler]
	deleteSegmentHandler lazy.Loader[http.DeleteSegmentHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[internalcmd.SQLMigrations],
) DependencyContainer {
	transaction := transactionProvider(db)
	segmentRepo := segmentRepositoryProvider(db, dbMigrations)
	permissionService := permissionServiceProvider()

	segmentService := segmentServiceProvider(segmentRepo, permissionService, transaction)

	return DependencyContainer{
		SegmentService: segmentService,
		getSegmentsHandler: lazy.New(func() (http.GetSegmentsHandler, error) {
			return http.NewGetSegmentsHandler(segmentService.MustLoad()), nil
		}),
		querySegmentsHandler: lazy.New(func() (http.QuerySegmentsHandler, error) {
			return http.NewQuerySegmentsHandler(segmentService.MustLoad()), nil
		}),
		getSegmentHandler: lazy.New(func() (http.GetSegmentHandler, error) {
			return http.NewGetSegmentHandler(segmentService.MustLoad()), nil
		}),
		createSegmentHandler: lazy.New(func() (http.CreateSegmentHandler, error) {
			return http.NewCreateSegmentHandler(segmentService.MustLoad()), nil
		}),
		updateSegmentHandler: lazy.New(func() (http.UpdateSegmentHandler, error) {
			return http.NewUpdateSegmentHandler(segmentService.MustLoad()), nil
		}),
		deleteSegmentHandler: lazy.New(func() (http.DeleteSegmentHandler, error) {
			return http.NewDeleteSegmentHandler(segmentService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.getSegmentsHandler.MustLoad())
	registry.Register(c.querySegmentsHandler.MustLoad())
	registry.Register(c.getSegmentHandler.MustLoad())
	registry.Register(c.createSegmentHandler.MustLoad(), pkghttp.WithAuthenticationRequirement())
	registry.Register(c.updateSegmentHandler.MustLoad(), pkghttp.WithAuthenticationRequirement())
	registry.Register(c.deleteSegmentHandler.MustLoad(), pkghttp.WithAuthenticationRequirement())
}

func transactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return sql.NewTransaction(db.MustLoad(), domain.Name, nil), nil
	})
}

func segmentRepositoryProvider(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[internalcmd.SQLMigrations],
) lazy.Loader[domain.SegmentRepository] {
	return lazy.New(func() (domain.SegmentRepository, error) {
		dbMigrations.MustLoad().MustRegister(sqlsegment.Migrations)
		return segmentinfrasql.NewSegmentRepository(sql.NewTransactionalClient(db.MustLoad())), nil
	})
}

func permissionServiceProvider() lazy.Loader[internalauth.PermissionService] {
	return lazy.New(func() (internalauth.PermissionService, error) {
		return pkgauth.NewPermissionService[internalauth.Principal](), nil
	})
}

func segmentServiceProvider(
	segmentRepo lazy.Loader[domain.SegmentRepository],
	permissionService lazy.Loader[internalauth.PermissionService],
	transaction lazy.Loader[persistence.Transaction],
) lazy.Loader[service.Segment] {
	return lazy.New(func() (service.Segment, error) {
		return service.NewSegment(
			segmentRepo.MustLoad(),
			permissionService.MustLoad(),
			transaction.MustLoad(),
		), nil
	})
}
