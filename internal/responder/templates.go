package responder

const missionTmpl = `{{define "mission"}}🛰️ **{{.Mission.Key}} Mission Details**

{{.Mission.Description}}.

• **Data Products**: {{join .Mission.Products ", "}}
• **Resolution**: {{.Mission.Resolution}}
• **Coverage**: {{.Mission.Coverage}}
• **Sensors**: {{join .Mission.Sensors ", "}}
• **Launch Years**: {{join .Mission.LaunchYears ", "}}
• **Applications**: {{join .Mission.Applications ", "}}
{{- if .Related}}

Related knowledge: {{join .Related ", "}}{{end}}{{end}}`

const missionFallbackTmpl = `{{define "mission_fallback"}}🛰️ **Satellite Mission Information**

The portal hosts data from these missions:

{{range .Missions}}• **{{.Key}}**: {{.Description}}
{{end}}
Name a mission to see its products, sensors and resolution.{{end}}`

const geospatialTmpl = `{{define "geospatial"}}🌍 **Geospatial Information: {{.Location.Key}}**

• **Coordinates**: {{coord .Location.Lat}}°N, {{coord .Location.Lon}}°E
• **Region**: {{.Location.Region}}
• **Coverage**: {{.Location.Coverage}}
{{- if .Missions}}
• **Relevant Missions**: {{join .Missions ", "}}{{end}}

Available formats: GeoTIFF, HDF5, NetCDF and KML. Geographic and UTM projections are supported.{{end}}`

const geospatialFallbackTmpl = `{{define "geospatial_fallback"}}🌍 **Geospatial Query Detected**

Satellite imagery and data are available for India and surrounding regions.

• **Resolution**: Multiple resolution options available
• **Formats**: GeoTIFF, HDF5, NetCDF
• **Coordinate Systems**: Geographic and UTM projections supported

Which region or time period are you interested in?{{end}}`

const downloadTmpl = `{{define "download"}}📥 **Data Download Guide**
{{- if .Mission}}

Downloading **{{.Mission.Key}}** products ({{join .Mission.Products ", "}}):{{end}}

1. Sign in to the portal with your registered account
2. Open the catalogue and filter by mission, product and date range
3. Select the area of interest on the map or enter coordinates
4. Choose an output format (GeoTIFF, HDF5, NetCDF or KML)
5. Submit the order and download from the "My Orders" page

Large orders are staged and a download link is emailed when ready.{{end}}`

const technicalTmpl = `{{define "technical"}}💻 **API Access Guide**

The data services are exposed over a REST API:

• **Authentication**: API key in the Authorization header
• **Search**: GET /api/v1/products?mission={{if .Mission}}{{.Mission.Key}}{{else}}<MISSION>{{end}}
• **Order**: POST /api/v1/orders
• **Status**: GET /api/v1/orders/{id}
• **Rate Limit**: 100 requests per minute

Responses are JSON. See the API documentation for client examples.{{end}}`

const generalTmpl = `{{define "general"}}{{.Intro}}
{{- if .Related}}

Related knowledge: {{join .Related ", "}}{{end}}

Could you specify if you need:
• Data product information
• Technical documentation
• Geospatial data for specific regions
• API access details
• Mission-specific information{{end}}`

// generalIntros is the fixed set the general family picks from. %q is the
// user's query.
var generalIntros = []string{
	"I understand you're looking for information about %q. Based on our knowledge graph, I can provide details about satellite data products, services and documentation.",
	"Thanks for your question about %q. I can help you explore satellite missions, geospatial coverage and data access options.",
}
