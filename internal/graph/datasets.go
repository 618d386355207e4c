package graph

import "github.com/mosdac/assistant/internal/models"

type md = models.Metadata

func classicNodes() []models.Node {
	return []models.Node{
		{ID: "insat", Label: "INSAT Series", Type: models.NodeMission, X: 150, Y: 100,
			Connections: []string{"weather_data", "communication"},
			Metadata:    md{{Key: "launch_year", Value: "1988"}, {Key: "status", Value: "active"}, {Key: "sensors", Value: []string{"VHRR", "CCD"}}}},
		{ID: "resourcesat", Label: "RESOURCESAT", Type: models.NodeMission, X: 300, Y: 100,
			Connections: []string{"land_data", "agriculture"},
			Metadata:    md{{Key: "launch_year", Value: "2003"}, {Key: "status", Value: "active"}, {Key: "sensors", Value: []string{"LISS-III", "AWiFS"}}}},
		{ID: "cartosat", Label: "CARTOSAT", Type: models.NodeMission, X: 450, Y: 100,
			Connections: []string{"mapping_data", "urban_planning"},
			Metadata:    md{{Key: "launch_year", Value: "2005"}, {Key: "status", Value: "active"}, {Key: "sensors", Value: []string{"PAN", "MX"}}}},
		{ID: "weather_data", Label: "Weather Data", Type: models.NodeData, X: 100, Y: 250,
			Connections: []string{"india_region", "cyclone_docs"},
			Metadata:    md{{Key: "formats", Value: []string{"NetCDF", "HDF"}}, {Key: "resolution", Value: "1km"}, {Key: "update_frequency", Value: "hourly"}}},
		{ID: "land_data", Label: "Land Use Data", Type: models.NodeData, X: 300, Y: 250,
			Connections: []string{"india_region", "agriculture_docs"},
			Metadata:    md{{Key: "formats", Value: []string{"GeoTIFF", "HDF"}}, {Key: "resolution", Value: "23.5m"}, {Key: "update_frequency", Value: "daily"}}},
		{ID: "mapping_data", Label: "Mapping Data", Type: models.NodeData, X: 500, Y: 250,
			Connections: []string{"urban_areas", "cartography_docs"},
			Metadata:    md{{Key: "formats", Value: []string{"GeoTIFF"}}, {Key: "resolution", Value: "2.5m"}, {Key: "update_frequency", Value: "on-demand"}}},
		{ID: "india_region", Label: "India & Surroundings", Type: models.NodeLocation, X: 200, Y: 400,
			Connections: []string{"user_queries"},
			Metadata:    md{{Key: "bounds", Value: []float64{68.7, 97.25, 8.4, 37.6}}, {Key: "projection", Value: "Geographic"}}},
		{ID: "urban_areas", Label: "Urban Centers", Type: models.NodeLocation, X: 400, Y: 400,
			Connections: []string{"user_queries"},
			Metadata:    md{{Key: "cities", Value: []string{"Delhi", "Mumbai", "Bangalore"}}, {Key: "coverage", Value: "high_resolution"}}},
		{ID: "cyclone_docs", Label: "Cyclone Monitoring Guide", Type: models.NodeDocument, X: 50, Y: 350,
			Connections: []string{},
			Metadata:    md{{Key: "type", Value: "PDF"}, {Key: "pages", Value: 45}, {Key: "last_updated", Value: "2024-01-15"}}},
		{ID: "agriculture_docs", Label: "Agriculture Handbook", Type: models.NodeDocument, X: 250, Y: 350,
			Connections: []string{},
			Metadata:    md{{Key: "type", Value: "PDF"}, {Key: "pages", Value: 78}, {Key: "last_updated", Value: "2024-02-20"}}},
		{ID: "user_queries", Label: "User Queries", Type: models.NodeUserQuery, X: 300, Y: 500,
			Connections: []string{},
			Metadata:    md{{Key: "common_topics", Value: []string{"data_download", "api_access", "coordinates"}}}},
	}
}

func classicEdges() []models.Edge {
	return []models.Edge{
		{Source: "insat", Target: "weather_data", Relationship: "generates"},
		{Source: "resourcesat", Target: "land_data", Relationship: "generates"},
		{Source: "cartosat", Target: "mapping_data", Relationship: "generates"},
		{Source: "weather_data", Target: "india_region", Relationship: "covers"},
		{Source: "land_data", Target: "india_region", Relationship: "covers"},
		{Source: "mapping_data", Target: "urban_areas", Relationship: "focuses_on"},
		{Source: "weather_data", Target: "cyclone_docs", Relationship: "documented_in"},
		{Source: "land_data", Target: "agriculture_docs", Relationship: "documented_in"},
		{Source: "india_region", Target: "user_queries", Relationship: "queried_for"},
		{Source: "urban_areas", Target: "user_queries", Relationship: "queried_for"},
	}
}

func aiNodes() []models.Node {
	return []models.Node{
		{ID: "nlp_engine", Label: "NLP Engine", Type: models.NodeAIModel, X: 300, Y: 50,
			Connections: []string{"entity_extractor", "intent_classifier"}, Score: 0.94, ProcessingTime: 120,
			Metadata: md{{Key: "model", Value: "Transformer-based"}, {Key: "accuracy", Value: "94%"}, {Key: "languages", Value: []string{"English", "Hindi"}}}},
		{ID: "knowledge_graph", Label: "Knowledge Graph", Type: models.NodeKnowledgeEntity, X: 150, Y: 150,
			Connections: []string{"missions_db", "locations_db", "products_db"}, Score: 0.96, ProcessingTime: 80,
			Metadata: md{{Key: "entities", Value: 15420}, {Key: "relationships", Value: 45000}, {Key: "update_frequency", Value: "Real-time"}}},
		{ID: "rag_pipeline", Label: "RAG Pipeline", Type: models.NodeAIModel, X: 450, Y: 150,
			Connections: []string{"vector_store", "response_generator"}, Score: 0.91, ProcessingTime: 200,
			Metadata: md{{Key: "retrieval_k", Value: 5}, {Key: "embedding_dim", Value: 384}, {Key: "context_window", Value: 4096}}},
		{ID: "insat_mission", Label: "INSAT Missions", Type: models.NodeMission, X: 50, Y: 300,
			Connections: []string{"weather_products", "api_weather"}, Score: 0.98, ProcessingTime: 50,
			Metadata: md{{Key: "satellites", Value: 12}, {Key: "data_volume", Value: "2TB/day"}, {Key: "coverage", Value: "Indian Ocean Region"}}},
		{ID: "cartosat_mission", Label: "CARTOSAT Missions", Type: models.NodeMission, X: 200, Y: 300,
			Connections: []string{"mapping_products", "api_imagery"}, Score: 0.97, ProcessingTime: 60,
			Metadata: md{{Key: "resolution", Value: "0.25m"}, {Key: "satellites", Value: 6}, {Key: "applications", Value: "Urban Planning"}}},
		{ID: "resourcesat_mission", Label: "RESOURCESAT Missions", Type: models.NodeMission, X: 350, Y: 300,
			Connections: []string{"land_products", "api_agriculture"}, Score: 0.95, ProcessingTime: 70,
			Metadata: md{{Key: "spectral_bands", Value: 23}, {Key: "swath", Value: "740km"}, {Key: "repeat_cycle", Value: "24 days"}}},
		{ID: "mumbai_region", Label: "Mumbai Region", Type: models.NodeLocation, X: 500, Y: 300,
			Connections: []string{"urban_analysis", "coastal_monitoring"}, Score: 0.93, ProcessingTime: 40,
			Metadata: md{{Key: "coordinates", Value: "[19.0760°N, 72.8777°E]"}, {Key: "area", Value: "603.4 km²"}, {Key: "population", Value: "12.4M"}}},
		{ID: "api_gateway", Label: "API Gateway", Type: models.NodeAPIEndpoint, X: 300, Y: 450,
			Connections: []string{"auth_service", "rate_limiter", "data_service"}, Score: 0.92, ProcessingTime: 30,
			Metadata: md{{Key: "endpoints", Value: 25}, {Key: "requests_per_day", Value: "1M+"}, {Key: "uptime", Value: "99.9%"}}},
	}
}

func aiEdges() []models.Edge {
	return []models.Edge{
		{Source: "nlp_engine", Target: "knowledge_graph", Relationship: "queries", Confidence: 0.94,
			Rationale: "NLP engine semantically queries knowledge graph for entity resolution"},
		{Source: "knowledge_graph", Target: "rag_pipeline", Relationship: "provides_context", Confidence: 0.91,
			Rationale: "Knowledge graph provides structured context for RAG retrieval"},
		{Source: "rag_pipeline", Target: "insat_mission", Relationship: "retrieves_data", Confidence: 0.89,
			Rationale: "RAG pipeline retrieves relevant INSAT mission data based on query"},
		{Source: "insat_mission", Target: "mumbai_region", Relationship: "covers", Confidence: 0.96,
			Rationale: "INSAT satellites provide comprehensive coverage of Mumbai region"},
		{Source: "cartosat_mission", Target: "mumbai_region", Relationship: "high_res_imagery", Confidence: 0.98,
			Rationale: "CARTOSAT provides high-resolution imagery for Mumbai urban analysis"},
		{Source: "api_gateway", Target: "cartosat_mission", Relationship: "data_access", Confidence: 0.93,
			Rationale: "API gateway enables programmatic access to CARTOSAT data products"},
	}
}
