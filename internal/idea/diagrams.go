package idea

// Mermaid sources for each timeframe, plus the defaults used when no
// timeframe overlay ran.

const flow24Hours = `graph TD
    A[User Interface] --> B[Core Features]
    B --> C[Simple Backend]
    C --> D[Deploy MVP]
`

const erd24Hours = `erDiagram
    User ||--o{ Data : creates
    Data {
        string id
        string content
        date createdAt
    }
    User {
        string id
        string email
    }
`

const flowWeekend = `graph TD
    A[User Interface] --> B[Auth System]
    B --> C[Core Features]
    C --> D[Backend API]
    D --> E[Data Storage]
    C --> F[Deploy]
`

const erdWeekend = `erDiagram
    User ||--o{ Project : creates
    Project ||--|{ Item : contains
    Item {
        string id
        string content
        date createdAt
    }
    User {
        string id
        string email
    }
    Project {
        string id
        string name
        date createdAt
    }
`

const flowMonth = `graph TD
    A[User Research] --> B[Design]
    B --> C[Frontend Dev]
    C --> D[Backend Dev]
    D --> E[Auth System]
    E --> F[Advanced Features]
    F --> G[Testing]
    G --> H[Analytics]
    H --> I[Deployment]
`

const erdMonth = `erDiagram
    User ||--o{ Project : creates
    Project ||--|{ Item : contains
    Item ||--o{ SubItem : has
    User ||--o{ Settings : configures
    User {
        string id
        string email
        date createdAt
        date lastLogin
    }
    Project {
        string id
        string name
        date createdAt
        boolean isPublic
    }
    Item {
        string id
        string content
        date createdAt
        string status
    }
    SubItem {
        string id
        string content
        boolean completed
    }
    Settings {
        string id
        json preferences
    }
`

const defaultFlow = `graph TD
    A[Frontend] --> B[API]
    B --> C[Database]
    B --> D[Auth]
`

const defaultERD = `erDiagram
    User ||--o{ Data : creates
    Data {
        string id
        string content
    }
    User {
        string id
        string email
    }
`
