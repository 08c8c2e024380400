package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"

	"github.com/parkplatztransform/parkapi/internal/cluster/app/service"
	"github.com/parkplatztransform/parkapi/internal/cluster/domain"
	pkghttp "github.com/parkplatztransform/parkapi/pkg/http"
)

type GetClustersHandler struct {
	clusterService service.Cluster
}

func NewGetClustersHandler(clusterService service.Cluster) GetClustersHandler {
	return GetClustersHandler{clusterService: clusterService}
}

func (h GetClustersHandler) Method() string {
	return http.MethodGet
}

func (h GetClustersHandler) Path() string {
	return "/clusters/"
}

func (h GetClustersHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	clusters, err := h.clusterService.GetAll(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toClusterFeatureCollection(clusters))
	return nil
}

type clusterFeatureCollection struct {
	Type     string           `json:"type"`
	Features []clusterFeature `json:"features"`
}

type clusterFeature struct {
	Type       string            `json:"type"`
	ID         uuid.UUID         `json:"id"`
	Geometry   *geojson.Geometry `json:"geometry"`
	BBox       []float64         `json:"bbox"`
	Properties clusterProperties `json:"properties"`
}

type clusterProperties struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func toClusterFeatureCollection(clusters []domain.Cluster) clusterFeatureCollection {
	features := make([]clusterFeature, 0, len(clusters))
	for _, cluster := range clusters {
		bound := cluster.Geometry.Bound()
		features = append(features, clusterFeature{
			Type:     "Feature",
			ID:       cluster.ID,
			Geometry: geojson.NewGeometry(cluster.Geometry),
			BBox:     []float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()},
			Properties: clusterProperties{
				Name:  cluster.Name,
				Count: cluster.Count,
			},
		})
	}

	return clusterFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
